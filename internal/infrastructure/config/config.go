package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Upstream GraphQL API
	GraphQLEndpoint string        `env:"WS_GRAPHQL_ENDPOINT" envDefault:"https://my.wealthsimple.com/graphql"`
	GraphQLProfile  string        `env:"WS_GRAPHQL_PROFILE"  envDefault:"invest"`
	GraphQLTimeout  time.Duration `env:"WS_GRAPHQL_TIMEOUT"  envDefault:"30s"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"120s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Document cache (optional - leave REDIS_URL empty to disable)
	RedisURL string        `env:"REDIS_URL"  envDefault:""`
	CacheTTL time.Duration `env:"CACHE_TTL"  envDefault:"5m"`

	// Run history (optional - leave DATABASE_URL empty to disable)
	DatabaseURL      string        `env:"DATABASE_URL"       envDefault:""`
	DatabaseMaxConns int           `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	DatabaseMinConns int           `env:"DATABASE_MIN_CONNS" envDefault:"2"`
	DatabaseTimeout  time.Duration `env:"DATABASE_TIMEOUT"   envDefault:"30s"`
	MigrationsPath   string        `env:"MIGRATIONS_PATH"    envDefault:"migrations"`
}

// CacheEnabled reports whether the export document cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// RunHistoryEnabled reports whether run history persistence is configured.
func (c *Config) RunHistoryEnabled() bool {
	return c.DatabaseURL != ""
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
