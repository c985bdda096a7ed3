package components

import (
	"context"
	"log/slog"

	"activity-booking/internal/handler/api"
	"activity-booking/internal/infra/lock"
	"activity-booking/internal/infra/messaging"
	"activity-booking/internal/infra/processor"
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

// IntegrationModule provides the adapters to external systems. Each one falls back to a
// local implementation when its connection settings are empty.
var IntegrationModule = fx.Module("integration",
	fx.Provide(
		processor.New,
		fx.Annotate(
			NewWebhookVerifier,
			fx.As(new(api.WebhookParser)),
		),
		NewNotifier,
		NewLocker,
	),
)

func NewWebhookVerifier(cfg config.StripeConfig) *processor.WebhookVerifier {
	return processor.NewWebhookVerifier(cfg.WebhookSecret)
}

func NewNotifier(lc fx.Lifecycle, cfg config.Config) (commands.Notifier, error) {
	if cfg.AMQP.URL == "" {
		slog.Warn("AMQP_URL is empty, notifications are only logged")
		return messaging.LogNotifier{}, nil
	}
	publisher, err := messaging.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

func NewLocker(lc fx.Lifecycle, cfg config.Config) (lock.Locker, error) {
	if cfg.Redis.Addr == "" {
		return lock.NoopLocker{}, nil
	}
	client, err := lock.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return lock.NewRedisLocker(client), nil
}
