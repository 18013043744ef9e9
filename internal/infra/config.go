package infra

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"beam/internal/domain"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv               string   `env:"APP_ENV" envDefault:"development"`
	Port                 string   `env:"PORT" envDefault:"8080"`
	DatabaseURL          string   `env:"DATABASE_URL"`
	DatabaseSimpleProto  bool     `env:"DATABASE_SIMPLE_PROTOCOL"`
	DatabaseMaxConns     int32    `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	StripeSecretKey      string   `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret  string   `env:"STRIPE_WEBHOOK_SECRET"`
	StripePublishableKey string   `env:"STRIPE_PUBLISHABLE_KEY"`
	Currency             string   `env:"CURRENCY" envDefault:"usd"`
	AllowedOrigins       []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	SiteURL              string   `env:"SITE_URL"`
	TrustProxy           bool     `env:"TRUST_PROXY"`
	AdminTokenSecret     string   `env:"ADMIN_TOKEN_SECRET"`
	GeoIPDBPath          string   `env:"GEOIP_DB_PATH"`
	HTTPReadTimeout      time.Duration
	HTTPWriteTimeout     time.Duration
	HTTPIdleTimeout      time.Duration
	RateLimitPerMin      int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`

	ReadTimeoutSeconds  int `env:"HTTP_READ_TIMEOUT_SECONDS" envDefault:"15"`
	WriteTimeoutSeconds int `env:"HTTP_WRITE_TIMEOUT_SECONDS" envDefault:"30"`
	IdleTimeoutSeconds  int `env:"HTTP_IDLE_TIMEOUT_SECONDS" envDefault:"60"`
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
// The store and the payment gateway have no fallback: a missing key fails startup.
func LoadConfig() (*Config, error) {
	cfg, err := loadEnv()
	if err != nil {
		return nil, err
	}
	for _, req := range []struct{ key, val string }{
		{"DATABASE_URL", cfg.DatabaseURL},
		{"STRIPE_SECRET_KEY", cfg.StripeSecretKey},
		{"STRIPE_WEBHOOK_SECRET", cfg.StripeWebhookSecret},
	} {
		if req.val == "" {
			return nil, fmt.Errorf("%w: %s is required", domain.ErrConfig, req.key)
		}
	}
	return cfg, nil
}

// LoadDatabaseConfig loads configuration for tools that only talk to the store.
func LoadDatabaseConfig() (*Config, error) {
	cfg, err := loadEnv()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL is required", domain.ErrConfig)
	}
	return cfg, nil
}

func loadEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: parse env: %v", domain.ErrConfig, err)
	}
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.StripeSecretKey = strings.TrimSpace(cfg.StripeSecretKey)
	cfg.StripeWebhookSecret = strings.TrimSpace(cfg.StripeWebhookSecret)
	cfg.Currency = strings.ToLower(strings.TrimSpace(cfg.Currency))
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	cfg.SiteURL = strings.TrimRight(strings.TrimSpace(cfg.SiteURL), "/")
	cfg.AllowedOrigins = cleanList(cfg.AllowedOrigins)
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = cfg.defaultOrigins()
	}
	cfg.HTTPReadTimeout = seconds(cfg.ReadTimeoutSeconds, 15)
	cfg.HTTPWriteTimeout = seconds(cfg.WriteTimeoutSeconds, 30)
	cfg.HTTPIdleTimeout = seconds(cfg.IdleTimeoutSeconds, 60)
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = 30
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// defaultOrigins allows the site itself, plus the local dev server in development.
func (c *Config) defaultOrigins() []string {
	var out []string
	if c.SiteURL != "" {
		out = append(out, c.SiteURL)
	}
	if c.IsDevelopment() {
		out = append(out, "http://localhost:"+c.Port)
	}
	return out
}

func seconds(v, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Second
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
