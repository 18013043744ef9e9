package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"beam/internal/domain"
	"beam/internal/middleware"
)

// PaymentGateway opens and looks up payment intents.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error)
	RetrievePaymentIntent(ctx context.Context, id string) (*domain.PaymentIntent, error)
}

// EventVerifier checks a webhook signature and decodes the event.
type EventVerifier interface {
	ConstructEvent(payload []byte, signature string) (*domain.PaymentEvent, error)
}

// EventApplier reconciles a verified event with stored donations.
type EventApplier interface {
	Apply(ctx context.Context, event *domain.PaymentEvent) error
}

// HomeRenderer writes the home page.
type HomeRenderer interface {
	RenderHome(w io.Writer, r *http.Request, highlights []domain.Project) error
}

// App carries the dependencies shared by every handler.
type App struct {
	Donations  domain.DonationRepository
	Projects   domain.ProjectRepository
	Volunteers domain.VolunteerRepository
	Payments   PaymentGateway
	Events     EventVerifier
	Reconciler EventApplier
	Pages      HomeRenderer
	Store      Pinger
	Currency   string
	Logger     zerolog.Logger
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// fail logs err and writes a generic error body with the status its kind maps to.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	code := statusFor(err)
	ev := a.Logger.Error()
	if code < http.StatusInternalServerError {
		ev = a.Logger.Warn()
	}
	ev.Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("path", r.URL.Path).
		Int("status", code).
		Msg(msg)
	a.json(w, code, map[string]string{"error": msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrAuthentication):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
