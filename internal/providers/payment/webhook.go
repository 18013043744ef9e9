package payment

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"beam/internal/domain"
)

// SignatureHeader carries the Stripe webhook signature.
const SignatureHeader = "Stripe-Signature"

// ConstructEvent verifies payload against the signing secret and decodes it
// into a PaymentEvent. Verification happens before any field is parsed.
func (c *Client) ConstructEvent(payload []byte, signature string) (*domain.PaymentEvent, error) {
	if strings.TrimSpace(signature) == "" {
		return nil, fmt.Errorf("%w: missing stripe signature", domain.ErrAuthentication)
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}
	return decodeEvent(event)
}

func decodeEvent(event stripe.Event) (*domain.PaymentEvent, error) {
	out := &domain.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
		Kind: domain.PaymentEventKindOf(string(event.Type)),
	}
	if event.Data == nil {
		if out.Kind != domain.EventUnrecognized {
			return nil, fmt.Errorf("%w: event %s has no data", domain.ErrValidation, event.ID)
		}
		return out, nil
	}

	switch out.Kind {
	case domain.EventPaymentSucceeded, domain.EventPaymentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("%w: decode payment intent: %w", domain.ErrValidation, err)
		}
		intent := &domain.IntentEvent{
			ID:       pi.ID,
			Amount:   domain.Cents(pi.Amount),
			Metadata: pi.Metadata,
		}
		if pi.LastPaymentError != nil {
			intent.LastError = pi.LastPaymentError.Msg
		}
		out.Intent = intent
	case domain.EventInvoicePaid, domain.EventInvoiceFailed:
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return nil, fmt.Errorf("%w: decode invoice: %w", domain.ErrValidation, err)
		}
		invoice := &domain.InvoiceEvent{
			ID:            inv.ID,
			CustomerEmail: inv.CustomerEmail,
			AmountPaid:    domain.Cents(inv.AmountPaid),
			Metadata:      map[string]string{},
		}
		if inv.Subscription != nil {
			invoice.SubscriptionID = inv.Subscription.ID
			for k, v := range inv.Subscription.Metadata {
				invoice.Metadata[k] = v
			}
		}
		for k, v := range inv.Metadata {
			invoice.Metadata[k] = v
		}
		out.Invoice = invoice
	case domain.EventUnrecognized:
	}
	return out, nil
}
