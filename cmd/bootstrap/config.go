package bootstrap

import (
	"activity-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.StripeConfig { return cfg.Stripe },
		func(cfg config.Config) config.AuthConfig { return cfg.Auth },
		func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
		func(cfg config.Config) config.SchedulerConfig { return cfg.Scheduler },
	),
)
