package infra

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDBPool initializes a new pgx connection pool using the provided configuration.
func NewDBPool(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolCfg.MaxConns = cfg.DatabaseMaxConns
	if poolCfg.MaxConns <= 0 {
		poolCfg.MaxConns = 10
	}
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	// Transaction-mode poolers in front of hosted Postgres reject prepared statements.
	if cfg.DatabaseSimpleProto || usesTransactionPooler(poolCfg.ConnConfig.Port) {
		poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// usesTransactionPooler reports whether port is the conventional pgbouncer
// transaction-mode port of hosted Postgres providers.
func usesTransactionPooler(port uint16) bool {
	return port == 6543
}

// passwordParam matches a password setting in keyword/value DSNs
// (password='p w') and in URL query strings (?password=x&...).
var passwordParam = regexp.MustCompile(`(?i)\bpassword\s*=\s*('(?:\\.|[^'])*'|[^\s&]*)`)

// RedactDatabaseURL hides the password of a connection string for logging.
// Both URL and keyword/value forms are handled.
func RedactDatabaseURL(raw string) string {
	raw = passwordParam.ReplaceAllString(raw, "password=***")
	at := strings.LastIndex(raw, "@")
	scheme := strings.Index(raw, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return raw
	}
	creds := raw[scheme+3 : at]
	if colon := strings.Index(creds, ":"); colon >= 0 {
		creds = creds[:colon] + ":***"
	}
	return raw[:scheme+3] + creds + raw[at:]
}
