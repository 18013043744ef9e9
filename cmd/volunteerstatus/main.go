package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"beam/internal/adapter/repo"
	"beam/internal/domain"
	"beam/internal/infra"
)

func main() {
	var (
		emailFlag  string
		statusFlag string
	)
	flag.StringVar(&emailFlag, "email", "", "volunteer email to update")
	flag.StringVar(&statusFlag, "status", string(domain.VolunteerApproved), "status to assign (pending, approved, active)")
	flag.Parse()

	email := strings.TrimSpace(emailFlag)
	status := domain.VolunteerStatus(strings.TrimSpace(strings.ToLower(statusFlag)))
	if email == "" {
		exitWithError(errors.New("-email is required"))
	}
	if !status.Valid() {
		exitWithError(fmt.Errorf("unsupported status %q", statusFlag))
	}

	_ = godotenv.Load()
	cfg, err := infra.LoadDatabaseConfig()
	if err != nil {
		exitWithError(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "volunteerstatus").Logger()
	volunteers := repo.NewVolunteerRepository(infra.NewSQLRunner(pool, logger))

	updateCtx, cancelUpdate := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelUpdate()
	if err := volunteers.UpdateStatus(updateCtx, email, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			exitWithError(fmt.Errorf("no volunteer registered with %s", email))
		}
		exitWithError(fmt.Errorf("failed to update volunteer: %w", err))
	}

	fmt.Printf("Volunteer %s moved to %s\n", email, status)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
