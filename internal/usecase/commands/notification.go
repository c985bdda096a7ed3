package commands

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/commands/notification_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"activity-booking/internal/pkg/clock"
	"activity-booking/internal/usecase/shared"
)

const (
	maxNotificationAttempts = 5
	notificationBaseBackoff = 30 * time.Second
)

type DispatchResult struct {
	Sent   int
	Failed int
}

// NotificationCommands drains the notification outbox. Delivery is at least once.
type NotificationCommands interface {
	DispatchDue(ctx context.Context) (*DispatchResult, error)
}

type notificationUseCaseImpl struct {
	uow       shared.UnitOfWork
	notifier  Notifier
	batchSize int
	clock     clock.Clock
}

func NewNotificationUseCase(uow shared.UnitOfWork, notifier Notifier, batchSize int, clk clock.Clock) NotificationCommands {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &notificationUseCaseImpl{uow: uow, notifier: notifier, batchSize: batchSize, clock: clk}
}

// DispatchDue claims due jobs with SKIP LOCKED so concurrent dispatchers never share a job.
func (uc *notificationUseCaseImpl) DispatchDue(ctx context.Context) (*DispatchResult, error) {
	result := &DispatchResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		*result = DispatchResult{}
		now := uc.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, now, maxNotificationAttempts, int32(uc.batchSize))
		if err != nil {
			return repoErr(err, nil)
		}

		for _, job := range jobs {
			if nerr := uc.notifier.Notify(ctx, job.Topic, job.Payload); nerr != nil {
				slog.Warn("notification delivery failed",
					"job_id", job.ID,
					"topic", job.Topic,
					"attempt", job.Attempts+1,
					"error", nerr)
				retryAt := now.Add(backoff(job.Attempts))
				if err := tx.Notifications().MarkFailed(ctx, job.ID, nerr.Error(), retryAt, now); err != nil {
					return repoErr(err, nil)
				}
				result.Failed++
				continue
			}
			if err := tx.Notifications().MarkSent(ctx, job.ID, now); err != nil {
				return repoErr(err, nil)
			}
			result.Sent++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Sent > 0 || result.Failed > 0 {
		slog.Info("notification outbox dispatched", "sent", result.Sent, "failed", result.Failed)
	}
	return result, nil
}

// backoff doubles per attempt: 30s, 1m, 2m, 4m.
func backoff(attempts int) time.Duration {
	return notificationBaseBackoff << min(attempts, 10)
}
