package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix scopes every environment variable the gateway reads.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names, kept as constants so tests and docs reference
// one spelling.
const (
	EnvAppEnv          = "STOREGATE_APP_ENV"
	EnvPort            = "STOREGATE_APP_PORT"
	EnvUpstreamBaseURL = "STOREGATE_UPSTREAM_BASE_URL"
	EnvRedisURL        = "STOREGATE_REDIS_URL"
	EnvJWTSecret       = "STOREGATE_JWT_SECRET"
	EnvCacheEnabled    = "STOREGATE_CACHE_ENABLED"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Cache    CacheConfig
	JWT      JWTConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREGATE_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREGATE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOREGATE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREGATE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type UpstreamConfig struct {
	BaseURL string        `envconfig:"STOREGATE_UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"STOREGATE_UPSTREAM_TIMEOUT" default:"15s"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREGATE_REDIS_URL"`
	Address      string        `envconfig:"STOREGATE_REDIS_ADDR"`
	Password     string        `envconfig:"STOREGATE_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREGATE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREGATE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREGATE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREGATE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREGATE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREGATE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CacheConfig struct {
	Enabled bool          `envconfig:"STOREGATE_CACHE_ENABLED" default:"false"`
	PageTTL time.Duration `envconfig:"STOREGATE_CACHE_PAGE_TTL" default:"30s"`
}

type JWTConfig struct {
	// Secret is shared with the backend so the gateway can verify the
	// access tokens it forwards.
	Secret string `envconfig:"STOREGATE_JWT_SECRET" required:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STOREGATE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
