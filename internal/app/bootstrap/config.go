package bootstrap

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all service configuration, loaded from the environment with
// optional .env file support. Every variable carries the INKPOST_ prefix.
type Config struct {
	// Env is the runtime mode: "dev" or "prod". Production restricts CORS
	// to AllowedOrigins and removes stack traces from error responses.
	Env string `env:"INKPOST_ENV" envDefault:"dev"`

	// HTTPPort is the first port the listener tries; on conflict the next
	// port is tried, up to 65535.
	HTTPPort int `env:"INKPOST_HTTP_PORT" envDefault:"3001"`

	// MongoDB connection configuration.
	MongoURI           string        `env:"INKPOST_MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase      string        `env:"INKPOST_MONGO_DATABASE" envDefault:"inkpost"`
	MongoMaxPoolSize   uint64        `env:"INKPOST_MONGO_MAX_POOL_SIZE" envDefault:"10"`
	MongoSelectTimeout time.Duration `env:"INKPOST_MONGO_SELECT_TIMEOUT" envDefault:"5s"`
	MongoSocketTimeout time.Duration `env:"INKPOST_MONGO_SOCKET_TIMEOUT" envDefault:"45s"`

	// DBRetryInterval is the fixed delay between document store connection
	// attempts. Retries continue until the store comes up.
	DBRetryInterval time.Duration `env:"INKPOST_DB_RETRY_INTERVAL" envDefault:"5s"`

	// Mail relay configuration.
	SMTPHost     string `env:"INKPOST_SMTP_HOST" envDefault:"localhost"`
	SMTPPort     int    `env:"INKPOST_SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"INKPOST_SMTP_USER"`
	SMTPPass     string `env:"INKPOST_SMTP_PASS"`
	MailFrom     string `env:"INKPOST_MAIL_FROM" envDefault:"noreply@inkpost.local"`
	MailFromName string `env:"INKPOST_MAIL_FROM_NAME" envDefault:"Inkpost"`

	// AdminEmail receives the notification for every contact submission.
	AdminEmail string `env:"INKPOST_ADMIN_EMAIL" envDefault:"admin@inkpost.local"`

	// AllowedOrigins is the CORS allow-list applied in production mode.
	AllowedOrigins []string `env:"INKPOST_ALLOWED_ORIGINS" envSeparator:","`
}

// IsProd reports whether the service runs in production mode.
func (c Config) IsProd() bool {
	return c.Env == "prod"
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one is present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return Config{}, fmt.Errorf("invalid INKPOST_HTTP_PORT: %d", cfg.HTTPPort)
	}
	return cfg, nil
}
