package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"pageview-analytics/internal/database"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBDriver       string        `env:"ANALYTICS_DB_DRIVER" envDefault:"postgres"`
	DBDSN          string        `env:"ANALYTICS_DB_DSN,required,notEmpty"`
	DBMaxOpenConns int           `env:"ANALYTICS_DB_MAX_OPEN_CONNS" envDefault:"20"`
	DBMaxIdleConns int           `env:"ANALYTICS_DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnLifetime time.Duration `env:"ANALYTICS_DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	ServerHost string `env:"ANALYTICS_SERVER_HOST" envDefault:"0.0.0.0"`
	ServerPort int    `env:"ANALYTICS_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"ANALYTICS_ENV" envDefault:"development"`
	LogLevel   string `env:"ANALYTICS_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"ANALYTICS_LOG_FORMAT" envDefault:"text"` // text | json

	// ProxyHeader names the header carrying the client IP behind a reverse
	// proxy, e.g. X-Forwarded-For. Empty uses the socket address.
	ProxyHeader string `env:"ANALYTICS_PROXY_HEADER"`

	// Dashboard
	MaxEventRows int           `env:"ANALYTICS_MAX_EVENT_ROWS" envDefault:"5000"`
	FetchTimeout time.Duration `env:"ANALYTICS_FETCH_TIMEOUT" envDefault:"10s"`
	Timezone     string        `env:"ANALYTICS_TIMEZONE" envDefault:"UTC"` // trend labels only

	// Collector
	GeoIPDBPath string `env:"ANALYTICS_GEOIP_DB_PATH"` // GeoLite2-Country.mmdb, optional

	// Retention; 0 days disables pruning.
	RetentionDays     int    `env:"ANALYTICS_RETENTION_DAYS" envDefault:"400"`
	RetentionSchedule string `env:"ANALYTICS_RETENTION_SCHEDULE" envDefault:"30 3 * * *"`

	dialect  database.Dialect
	location *time.Location
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

func (c Config) Dialect() database.Dialect {
	return c.dialect
}

// Location is the zone used for trend labels.
func (c Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c Config) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	d, err := database.ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("ANALYTICS_DB_DRIVER: %w", err)
	}
	cfg.dialect = d

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("ANALYTICS_TIMEZONE: %w", err)
	}
	cfg.location = loc

	if cfg.MaxEventRows <= 0 {
		return nil, fmt.Errorf("ANALYTICS_MAX_EVENT_ROWS must be positive, got %d", cfg.MaxEventRows)
	}
	if cfg.FetchTimeout < 0 {
		return nil, fmt.Errorf("ANALYTICS_FETCH_TIMEOUT must not be negative, got %s", cfg.FetchTimeout)
	}
	if cfg.RetentionDays < 0 {
		return nil, fmt.Errorf("ANALYTICS_RETENTION_DAYS must not be negative, got %d", cfg.RetentionDays)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
		cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	default:
		return nil, fmt.Errorf("ANALYTICS_LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}
