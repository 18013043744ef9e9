// Package db holds the database schema applied by cmd/migrate.
package db

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

//go:embed schema.sql
var Schema string

// Execer is satisfied by *pgxpool.Pool and *pgx.Conn.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Statements splits the schema into individual statements, dropping comments.
func Statements() []string {
	var (
		out []string
		buf strings.Builder
	)
	for _, line := range strings.Split(Schema, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			out = append(out, strings.TrimSpace(buf.String()))
			buf.Reset()
		}
	}
	if rest := strings.TrimSpace(buf.String()); rest != "" {
		out = append(out, rest)
	}
	return out
}

// Apply runs every schema statement in order.
func Apply(ctx context.Context, conn Execer) (int, error) {
	stmts := Statements()
	for i, stmt := range stmts {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return i, fmt.Errorf("apply statement %d: %w", i+1, err)
		}
	}
	return len(stmts), nil
}
