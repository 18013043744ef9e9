package domain

import "time"

// DonationFrequency enumerates how often a donor gives.
type DonationFrequency string

const (
	FrequencyOneTime DonationFrequency = "one-time"
	FrequencyMonthly DonationFrequency = "monthly"
)

// Valid reports whether f is a known frequency.
func (f DonationFrequency) Valid() bool {
	return f == FrequencyOneTime || f == FrequencyMonthly
}

// DonationStatus enumerates donation lifecycle states.
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
)

// DefaultProjectDesignation is sent to the gateway when the donor did not pick a project.
const DefaultProjectDesignation = "General Fund"

// Donation represents a supporter contribution record.
type Donation struct {
	ID              string            `json:"id"`
	Amount          Cents             `json:"amount"`
	Frequency       DonationFrequency `json:"frequency"`
	ProjectID       *string           `json:"project_id"`
	FirstName       string            `json:"first_name"`
	LastName        string            `json:"last_name"`
	Email           string            `json:"email"`
	Message         *string           `json:"message"`
	PaymentIntentID string            `json:"stripe_payment_intent_id"`
	InvoiceID       *string           `json:"stripe_invoice_id,omitempty"`
	Status          DonationStatus    `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// DonorName joins the donor's first and last name.
func (d Donation) DonorName() string {
	switch {
	case d.FirstName == "":
		return d.LastName
	case d.LastName == "":
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}
