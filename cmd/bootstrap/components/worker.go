package components

import (
	"context"
	"log/slog"

	"activity-booking/internal/infra/lock"
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/usecase/commands"
	"activity-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartScheduler),
)

type schedulerParams struct {
	fx.In

	Lifecycle     fx.Lifecycle
	Config        config.SchedulerConfig
	Locker        lock.Locker
	Holds         commands.HoldCommands
	Orders        commands.OrderCommands
	Notifications commands.NotificationCommands
}

func StartScheduler(p schedulerParams) error {
	if !p.Config.Enabled {
		slog.Info("scheduler disabled")
		return nil
	}
	scheduler, err := worker.NewScheduler(p.Locker, worker.BookingJobs(p.Config, p.Holds, p.Orders, p.Notifications)...)
	if err != nil {
		return err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
	return nil
}
