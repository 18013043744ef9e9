package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"beam/internal/adapter/repo"
	"beam/internal/http/handlers"
	httpapi "beam/internal/http/httpapi"
	"beam/internal/infra"
	"beam/internal/infra/geoip"
	"beam/internal/providers/payment"
	"beam/internal/web"
	"beam/internal/webhook"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("database", infra.RedactDatabaseURL(cfg.DatabaseURL)).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)
	donations := repo.NewDonationRepository(runner)

	gateway, err := payment.NewClient(payment.Options{
		APIKey:        cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		Logger:        &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure payment gateway")
	}

	siteOpts := web.Options{
		PublishableKey: cfg.StripePublishableKey,
		Logger:         logger,
	}
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("city lookup disabled")
	}
	if resolver != nil {
		defer resolver.Close()
		siteOpts.Cities = resolver
	}
	site, err := web.NewSite(siteOpts)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load page templates")
	}

	app := &handlers.App{
		Donations:  donations,
		Projects:   repo.NewProjectRepository(runner),
		Volunteers: repo.NewVolunteerRepository(runner),
		Payments:   gateway,
		Events:     gateway,
		Reconciler: webhook.NewReconciler(donations, logger),
		Pages:      site,
		Store:      dbpool,
		Currency:   cfg.Currency,
		Logger:     logger,
	}
	if cfg.AdminTokenSecret == "" {
		logger.Warn().Msg("ADMIN_TOKEN_SECRET not set; list routes are open")
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		AllowedOrigins:  cfg.AllowedOrigins,
		AdminSecret:     cfg.AdminTokenSecret,
		TrustProxy:      cfg.TrustProxy,
		RateLimitPerMin: cfg.RateLimitPerMin,
		Static:          site.Static("/static/"),
		Logger:          logger,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
