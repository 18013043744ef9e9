// Package webhook applies verified payment events to donation records.
package webhook

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"beam/internal/domain"
)

const (
	fallbackFirstName = "Recurring"
	fallbackLastName  = "Donor"
	recurringPrefix   = "sub_"
)

// Reconciler maps payment events onto donation state.
type Reconciler struct {
	donations domain.DonationRepository
	logger    zerolog.Logger
}

// NewReconciler builds a reconciler over the donation store.
func NewReconciler(donations domain.DonationRepository, logger zerolog.Logger) *Reconciler {
	return &Reconciler{donations: donations, logger: logger.With().Str("component", "webhook").Logger()}
}

// Apply handles one event. Store errors are returned so the caller can ask
// the provider to redeliver.
func (r *Reconciler) Apply(ctx context.Context, event *domain.PaymentEvent) error {
	log := r.logger.With().Str("event_id", event.ID).Str("event_type", event.Type).Logger()

	switch event.Kind {
	case domain.EventPaymentSucceeded:
		return r.transition(ctx, log, event, domain.DonationCompleted)
	case domain.EventPaymentFailed:
		return r.transition(ctx, log, event, domain.DonationFailed)
	case domain.EventInvoicePaid:
		return r.recordCycle(ctx, log, event)
	case domain.EventInvoiceFailed:
		if event.Invoice != nil {
			log.Warn().Str("subscription_id", event.Invoice.SubscriptionID).Msg("subscription payment failed")
		}
		return nil
	case domain.EventUnrecognized:
		log.Info().Msg("unhandled event type")
		return nil
	default:
		return fmt.Errorf("unknown event kind %d", event.Kind)
	}
}

func (r *Reconciler) transition(ctx context.Context, log zerolog.Logger, event *domain.PaymentEvent, status domain.DonationStatus) error {
	if event.Intent == nil || event.Intent.ID == "" {
		return fmt.Errorf("%w: %s event without payment intent", domain.ErrValidation, event.Kind)
	}
	n, err := r.donations.UpdateStatusByReference(ctx, event.Intent.ID, status)
	if err != nil {
		log.Error().Err(err).Str("payment_intent_id", event.Intent.ID).Msg("update donation status failed")
		return err
	}
	ev := log.Info()
	if n == 0 {
		ev = log.Warn()
	}
	ev.Str("payment_intent_id", event.Intent.ID).
		Str("status", string(status)).
		Int64("rows", n).
		Str("last_error", event.Intent.LastError).
		Msg("donation status reconciled")
	return nil
}

func (r *Reconciler) recordCycle(ctx context.Context, log zerolog.Logger, event *domain.PaymentEvent) error {
	inv := event.Invoice
	if inv == nil || inv.SubscriptionID == "" {
		return fmt.Errorf("%w: invoice event without subscription", domain.ErrValidation)
	}
	// Trial and fully discounted cycles arrive as paid invoices with nothing charged.
	if inv.AmountPaid <= 0 {
		log.Info().
			Str("invoice_id", inv.ID).
			Str("subscription_id", inv.SubscriptionID).
			Msg("zero amount invoice skipped")
		return nil
	}

	donation := RecurringDonation(inv)
	created, err := r.donations.CreateRecurring(ctx, donation)
	if err != nil {
		log.Error().Err(err).Str("subscription_id", inv.SubscriptionID).Msg("record recurring donation failed")
		return err
	}
	if !created {
		log.Info().Str("invoice_id", inv.ID).Msg("invoice already recorded")
		return nil
	}
	log.Info().
		Str("subscription_id", inv.SubscriptionID).
		Str("donation_id", donation.ID).
		Str("amount", donation.Amount.String()).
		Msg("subscription payment recorded")
	return nil
}

// RecurringDonation builds the completed monthly row for a paid invoice.
func RecurringDonation(inv *domain.InvoiceEvent) *domain.Donation {
	first, last := fallbackFirstName, fallbackLastName
	if name := strings.TrimSpace(inv.Metadata["donor_name"]); name != "" {
		first, last = splitName(name)
	}
	email := strings.TrimSpace(inv.Metadata["donor_email"])
	if email == "" {
		email = inv.CustomerEmail
	}

	d := &domain.Donation{
		Amount:          inv.AmountPaid,
		Frequency:       domain.FrequencyMonthly,
		FirstName:       first,
		LastName:        last,
		Email:           email,
		PaymentIntentID: recurringPrefix + inv.SubscriptionID,
		Status:          domain.DonationCompleted,
	}
	if project := strings.TrimSpace(inv.Metadata["project"]); project != "" {
		d.ProjectID = &project
	}
	if inv.ID != "" {
		id := inv.ID
		d.InvoiceID = &id
	}
	return d
}

func splitName(name string) (string, string) {
	first, last, found := strings.Cut(name, " ")
	if !found {
		return first, fallbackLastName
	}
	return first, strings.TrimSpace(last)
}
