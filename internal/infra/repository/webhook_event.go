package repository

//go:generate mockgen -source=webhook_event.go -destination=../../../tests/mock/repository/webhook_event_mock.go -package=repositorymock

import (
	"context"
	"time"

	"activity-booking/internal/infra"
	sqlc "activity-booking/internal/infra/sqlc/generated"
	"activity-booking/internal/pkg/pgconv"
)

type WebhookEventWriteQueries interface {
	InsertProcessedWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertProcessedWebhookEventParams) (int64, error)
}

type WebhookEventRepository struct {
	queries WebhookEventWriteQueries
	db      sqlc.DBTX
}

func NewWebhookEventRepository(queries WebhookEventWriteQueries, db sqlc.DBTX) *WebhookEventRepository {
	return &WebhookEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, eventID, eventType string, now time.Time) (bool, error) {
	n, err := r.queries.InsertProcessedWebhookEvent(ctx, r.db, sqlc.InsertProcessedWebhookEventParams{
		EventID:     eventID,
		EventType:   eventType,
		ProcessedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record webhook event", err)
	}
	return n > 0, nil
}
