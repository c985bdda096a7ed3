package worker

import (
	"context"
	"log/slog"
	"time"

	"activity-booking/internal/infra/lock"
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 30 * time.Second

// Job is one periodic maintenance task.
type Job struct {
	Name     string
	Schedule string
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	cron    *cron.Cron
	locker  lock.Locker
	jobs    []Job
	baseCtx context.Context
	cancel  context.CancelFunc
}

func NewScheduler(locker lock.Locker, jobs ...Job) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		locker:  locker,
		jobs:    jobs,
		baseCtx: ctx,
		cancel:  cancel,
	}
	for _, job := range jobs {
		if _, err := s.cron.AddFunc(job.Schedule, func() { s.RunOnce(s.baseCtx, job) }); err != nil {
			cancel()
			return nil, errs.Wrapf(err, "schedule %s (%q)", job.Name, job.Schedule)
		}
	}
	return s, nil
}

// BookingJobs wires the sweep, the pending order expiry and the outbox dispatch.
func BookingJobs(cfg config.SchedulerConfig, holds commands.HoldCommands, orders commands.OrderCommands, notifications commands.NotificationCommands) []Job {
	return []Job{
		{
			Name:     "sweep-expired-holds",
			Schedule: cfg.SweepSchedule,
			Run: func(ctx context.Context) error {
				_, err := holds.SweepExpired(ctx)
				return err
			},
		},
		{
			Name:     "expire-pending-orders",
			Schedule: cfg.OrderExpirySchedule,
			Run: func(ctx context.Context) error {
				n, err := orders.ExpirePending(ctx)
				if n > 0 {
					slog.Info("pending orders expired", "count", n)
				}
				return err
			},
		},
		{
			Name:     "dispatch-notifications",
			Schedule: cfg.OutboxSchedule,
			Run: func(ctx context.Context) error {
				_, err := notifications.DispatchDue(ctx)
				return err
			},
		},
	}
}

// RunOnce runs job under the distributed lock. Errors are logged, the next tick retries.
func (s *Scheduler) RunOnce(ctx context.Context, job Job) {
	ctx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()

	release, err := s.locker.TryLock(ctx, job.Name, jobTimeout)
	if err != nil {
		slog.Error("scheduler lock failed", "job", job.Name, "error", err)
		return
	}
	if release == nil {
		slog.Debug("job is running elsewhere", "job", job.Name)
		return
	}
	defer release()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		slog.Error("scheduled job failed", "job", job.Name, "duration", time.Since(start), "error", err)
		return
	}
	slog.Debug("scheduled job done", "job", job.Name, "duration", time.Since(start))
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started", "jobs", len(s.jobs))
}

// Stop waits for running jobs up to ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		return ctx.Err()
	}
}
