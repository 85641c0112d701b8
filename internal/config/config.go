package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"cointoss"`
	Version     string `env:"VERSION" envDefault:"dev"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`

	// Storage selects the backend; memory keeps everything in-process
	Storage       string        `env:"STORAGE" envDefault:"postgres" validate:"oneof=postgres memory"`
	DBUser        string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword    string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost        string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string        `env:"DB_PORT" envDefault:"5432"`
	DBName        string        `env:"DB_NAME" envDefault:"cointoss"`
	DBMaxConns    int           `env:"DB_MAX_CONNS" envDefault:"20" validate:"min=1"`
	DBMaxIdleTime time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"5m"`
	DBMaxLifetime time.Duration `env:"DB_MAX_LIFETIME" envDefault:"1h"`
	AutoMigrate   bool          `env:"AUTO_MIGRATE" envDefault:"false"`

	APIKey    string        `env:"API_KEY"` // API key for admin endpoints
	JWTSecret string        `env:"JWT_SECRET"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"cointoss"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h" validate:"gt=0"`

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	EnemyMinScore   int           `env:"ENEMY_MIN_SCORE" envDefault:"1" validate:"min=0"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m" validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"65536" validate:"min=1"`
}

// Parse reads the configuration without validating it.
// Commands that never serve traffic, like migrate, use it directly.
func Parse() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	return &cfg, nil
}

// Load parses and validates the configuration
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Addr is the HTTP listen address
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
