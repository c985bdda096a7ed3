package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Booking   BookingConfig
	Stripe    StripeConfig
	AMQP      AMQPConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Paris"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-API-Key,Idempotency-Key,X-Checkout-Session"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret        string        `envconfig:"JWT_SECRET" required:"true"`
	TokenDuration time.Duration `envconfig:"JWT_TOKEN_DURATION" default:"8h"`
}

type AuthConfig struct {
	// bcrypt hash of the key presented by the public site in X-API-Key
	PublicAPIKeyHash string `envconfig:"PUBLIC_API_KEY_HASH" required:"true"`
}

type BookingConfig struct {
	HoldTTL         time.Duration `envconfig:"HOLD_TTL" default:"15m"`
	HoldExtension   time.Duration `envconfig:"HOLD_EXTENSION" default:"15m"`
	PaymentHoldTTL  time.Duration `envconfig:"PAYMENT_HOLD_TTL" default:"30m"`
	PendingOrderTTL time.Duration `envconfig:"PENDING_ORDER_TTL" default:"1h"`
	IdempotencyTTL  time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
	Currency      string `envconfig:"PAYMENT_CURRENCY" default:"eur"`
}

type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"booking.events"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	PerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
	Burst     int `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

type SchedulerConfig struct {
	Enabled             bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	SweepSchedule       string `envconfig:"SWEEP_SCHEDULE" default:"@every 1m"`
	OrderExpirySchedule string `envconfig:"ORDER_EXPIRY_SCHEDULE" default:"@every 5m"`
	OutboxSchedule      string `envconfig:"OUTBOX_SCHEDULE" default:"@every 10s"`
	OutboxBatchSize     int    `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// Auth.PublicAPIKeyHash is left empty; suites hash TestPublicAPIKey themselves.
func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Paris",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Paris",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:        "test-secret",
			TokenDuration: time.Hour,
		},
		Booking: BookingConfig{
			HoldTTL:         15 * time.Minute,
			HoldExtension:   15 * time.Minute,
			PaymentHoldTTL:  30 * time.Minute,
			PendingOrderTTL: time.Hour,
			IdempotencyTTL:  24 * time.Hour,
		},
		Stripe: StripeConfig{
			Currency: "eur",
		},
		AMQP: AMQPConfig{
			Exchange: "booking.events",
		},
		RateLimit: RateLimitConfig{
			PerMinute: 6000,
			Burst:     1000,
		},
		Scheduler: SchedulerConfig{
			Enabled:         false,
			OutboxBatchSize: 50,
		},
	}
}

const TestPublicAPIKey = "test-public-key"
