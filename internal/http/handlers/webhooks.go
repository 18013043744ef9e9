package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"beam/internal/domain"
)

// maxWebhookBytes mirrors the payload ceiling Stripe documents for events.
const maxWebhookBytes = 65536

// PaymentWebhook verifies and reconciles a payment provider event.
func (a *App) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		a.fail(w, r, fmt.Errorf("%w: read body: %w", domain.ErrValidation, err), "Invalid payload")
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		a.fail(w, r, fmt.Errorf("%w: missing signature", domain.ErrAuthentication), "Missing stripe signature")
		return
	}
	event, err := a.Events.ConstructEvent(payload, signature)
	if err != nil {
		msg := "Invalid payload"
		if errors.Is(err, domain.ErrAuthentication) {
			msg = "Invalid signature"
		}
		a.fail(w, r, err, msg)
		return
	}

	if err := a.Reconciler.Apply(r.Context(), event); err != nil {
		a.fail(w, r, err, "Webhook handler failed")
		return
	}
	a.json(w, http.StatusOK, map[string]bool{"received": true})
}
