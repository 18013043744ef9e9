package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"beam/internal/middleware"
)

func main() {
	var (
		subjectFlag string
		secretFlag  string
		ttlFlag     time.Duration
	)
	flag.StringVar(&subjectFlag, "subject", "", "who the token is issued to (email or name)")
	flag.StringVar(&secretFlag, "secret", "", "signing secret (fallbacks to ADMIN_TOKEN_SECRET)")
	flag.DurationVar(&ttlFlag, "ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	subject := strings.TrimSpace(subjectFlag)
	if subject == "" {
		exitWithError("-subject is required")
	}
	secret := strings.TrimSpace(secretFlag)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("ADMIN_TOKEN_SECRET"))
	}
	if secret == "" {
		exitWithError("signing secret is required via -secret or ADMIN_TOKEN_SECRET")
	}
	if ttlFlag <= 0 {
		exitWithError("-ttl must be positive")
	}

	now := time.Now()
	token, err := middleware.IssueAdminToken(secret, subject, ttlFlag, now)
	if err != nil {
		exitWithError(fmt.Sprintf("failed to issue token: %v", err))
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "token for %s expires %s\n", subject, now.Add(ttlFlag).UTC().Format(time.RFC3339))
}

func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
