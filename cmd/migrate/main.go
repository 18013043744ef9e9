package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"beam/internal/db"
	"beam/internal/infra"
)

func main() {
	var dryRun bool
	flag.BoolVar(&dryRun, "dry-run", false, "print the schema statements without applying them")
	flag.Parse()

	if dryRun {
		for i, stmt := range db.Statements() {
			fmt.Printf("-- statement %d\n%s\n\n", i+1, stmt)
		}
		return
	}

	_ = godotenv.Load()
	cfg, err := infra.LoadDatabaseConfig()
	if err != nil {
		exitWithError(err)
	}
	logger := infra.NewLogger(cfg.AppEnv).With().Str("cmd", "migrate").Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		exitWithError(err)
	}
	defer pool.Close()

	applied, err := db.Apply(ctx, pool)
	if err != nil {
		logger.Error().Err(err).Int("applied", applied).Msg("migration failed")
		exitWithError(err)
	}
	logger.Info().Int("statements", applied).Str("database", infra.RedactDatabaseURL(cfg.DatabaseURL)).Msg("schema applied")
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
