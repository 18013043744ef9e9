package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"beam/internal/http/handlers"
	"beam/internal/middleware"
)

// Options configures the middleware around the routes.
type Options struct {
	AllowedOrigins []string
	// AdminSecret guards the list routes and project creation. Empty leaves them open.
	AdminSecret string
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool
	// RateLimitPerMin caps form submissions per client IP. Zero disables the limit.
	RateLimitPerMin int
	// Static serves the page assets under /static/. Nil skips the mount.
	Static http.Handler
	Logger zerolog.Logger
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
	)

	admin := middleware.AdminAuth(opts.AdminSecret)
	limit := func(next http.Handler) http.Handler { return next }
	if opts.RateLimitPerMin > 0 {
		limit = middleware.RateLimit(opts.RateLimitPerMin, time.Minute)
	}

	// Page
	r.Get("/", app.Home)
	if opts.Static != nil {
		r.Handle("/static/*", opts.Static)
	}

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/v1/docs", app.OpenAPIDocs)

	r.Route("/donations", func(r chi.Router) {
		r.With(limit).Post("/", app.DonationsCreate)
		r.With(admin).Get("/", app.DonationsList)
		r.Get("/intents/{id}", app.DonationIntentStatus)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", app.ProjectsList)
		r.With(admin).Post("/", app.ProjectsCreate)
	})

	r.Route("/volunteers", func(r chi.Router) {
		r.With(limit).Post("/", app.VolunteersCreate)
		r.With(admin).Get("/", app.VolunteersList)
	})

	// Stripe is configured with one of these two endpoints.
	r.Post("/webhooks/payment", app.PaymentWebhook)
	r.Post("/api/webhooks/stripe", app.PaymentWebhook)

	return r
}
