package bootstrap

import (
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.JWT.TokenDuration <= 0 {
		panic("invalid JWT_TOKEN_DURATION: must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.TokenDuration)
}
