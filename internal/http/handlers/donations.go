package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"beam/internal/domain"
	"beam/internal/sanitize"
)

const recentLimit = 100

type donationRequest struct {
	Amount    flexAmount `json:"amount" validate:"required,gt=0"`
	Frequency string     `json:"frequency" validate:"required,donation_frequency"`
	Project   *string    `json:"project" validate:"omitempty,max=200"`
	FirstName string     `json:"firstName" validate:"required,max=100"`
	LastName  string     `json:"lastName" validate:"required,max=100"`
	Email     string     `json:"email" validate:"required,email,max=254"`
	Message   *string    `json:"message" validate:"omitempty,max=2000"`
}

func (req *donationRequest) normalize() {
	req.Frequency = strings.TrimSpace(req.Frequency)
	req.Project = trimPtr(req.Project)
	req.FirstName = sanitize.Text(req.FirstName)
	req.LastName = sanitize.Text(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = sanitize.Optional(req.Message)
}

type donationResponse struct {
	Success      bool             `json:"success"`
	Donation     *domain.Donation `json:"donation"`
	ClientSecret string           `json:"client_secret"`
}

// DonationsCreate opens a payment intent and records a pending donation for it.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err, validationMessage(err))
		return
	}
	amount := domain.CentsFromAmount(float64(req.Amount))
	if amount <= 0 {
		a.fail(w, r, fmt.Errorf("%w: amount rounds to zero", domain.ErrValidation), "Invalid amount")
		return
	}

	donation := &domain.Donation{
		Amount:    amount,
		Frequency: domain.DonationFrequency(req.Frequency),
		ProjectID: req.Project,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Message:   req.Message,
		Status:    domain.DonationPending,
	}
	designation := domain.DefaultProjectDesignation
	if req.Project != nil {
		designation = *req.Project
	}
	intent, err := a.Payments.CreatePaymentIntent(r.Context(), domain.PaymentIntentRequest{
		Amount:   amount,
		Currency: a.Currency,
		Metadata: map[string]string{
			"project":     designation,
			"frequency":   string(donation.Frequency),
			"donor_name":  donation.DonorName(),
			"donor_email": donation.Email,
		},
		ReceiptEmail: donation.Email,
	})
	if err == nil && (intent == nil || intent.ID == "") {
		err = fmt.Errorf("%w: gateway returned no intent", domain.ErrGateway)
	}
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			err = fmt.Errorf("%w: %w", domain.ErrGateway, err)
		}
		a.fail(w, r, err, "Failed to create payment intent")
		return
	}

	donation.PaymentIntentID = intent.ID
	if err := a.Donations.Create(r.Context(), donation); err != nil {
		a.fail(w, r, err, "Failed to store donation record")
		return
	}

	a.Logger.Info().
		Str("donation_id", donation.ID).
		Str("payment_intent_id", intent.ID).
		Str("amount", amount.String()).
		Str("frequency", req.Frequency).
		Msg("donation created")
	a.json(w, http.StatusCreated, donationResponse{Success: true, Donation: donation, ClientSecret: intent.ClientSecret})
}

// DonationsList returns the most recent donations.
func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Donations.ListRecent(r.Context(), recentLimit)
	if err != nil {
		a.fail(w, r, err, "Failed to fetch donations")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"donations": items})
}

// DonationIntentStatus reports the gateway state of a payment intent.
func (a *App) DonationIntentStatus(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		a.fail(w, r, fmt.Errorf("%w: intent id required", domain.ErrValidation), msgMissingFields)
		return
	}
	intent, err := a.Payments.RetrievePaymentIntent(r.Context(), id)
	if err != nil {
		msg := "Failed to retrieve payment intent"
		if errors.Is(err, domain.ErrNotFound) {
			msg = "Payment intent not found"
		}
		a.fail(w, r, err, msg)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"id":     intent.ID,
		"status": intent.Status,
		"amount": intent.Amount,
	})
}
