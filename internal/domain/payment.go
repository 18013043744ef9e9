package domain

// PaymentIntentRequest describes a charge to open with the payment gateway.
type PaymentIntentRequest struct {
	Amount       Cents
	Currency     string
	Metadata     map[string]string
	ReceiptEmail string
}

// PaymentIntent is the gateway-side record of an attempted charge.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"-"`
	Status       string `json:"status"`
	Amount       Cents  `json:"amount"`
	Currency     string `json:"currency"`
}

// Customer is a gateway customer record.
type Customer struct {
	ID    string
	Email string
	Name  string
}

// Subscription is a gateway subscription. ClientSecret belongs to the first
// invoice's payment intent when the gateway expanded it.
type Subscription struct {
	ID           string
	Status       string
	CustomerID   string
	ClientSecret string
}

// PaymentEventKind is the closed set of webhook events the site reacts to.
type PaymentEventKind int

const (
	EventUnrecognized PaymentEventKind = iota
	EventPaymentSucceeded
	EventPaymentFailed
	EventInvoicePaid
	EventInvoiceFailed
)

var eventKindsByType = map[string]PaymentEventKind{
	"payment_intent.succeeded":      EventPaymentSucceeded,
	"payment_intent.payment_failed": EventPaymentFailed,
	"invoice.payment_succeeded":     EventInvoicePaid,
	"invoice.payment_failed":        EventInvoiceFailed,
}

// PaymentEventKindOf maps a provider event type string to its kind.
func PaymentEventKindOf(eventType string) PaymentEventKind {
	if kind, ok := eventKindsByType[eventType]; ok {
		return kind
	}
	return EventUnrecognized
}

func (k PaymentEventKind) String() string {
	switch k {
	case EventPaymentSucceeded:
		return "payment_succeeded"
	case EventPaymentFailed:
		return "payment_failed"
	case EventInvoicePaid:
		return "invoice_paid"
	case EventInvoiceFailed:
		return "invoice_failed"
	default:
		return "unrecognized"
	}
}

// PaymentEvent is a verified webhook event. Intent is set for the payment
// kinds, Invoice for the invoice kinds.
type PaymentEvent struct {
	ID      string
	Type    string
	Kind    PaymentEventKind
	Intent  *IntentEvent
	Invoice *InvoiceEvent
}

// IntentEvent carries the payment intent fields the reconciler needs.
type IntentEvent struct {
	ID        string
	Amount    Cents
	Metadata  map[string]string
	LastError string
}

// InvoiceEvent carries the invoice fields the reconciler needs.
type InvoiceEvent struct {
	ID             string
	SubscriptionID string
	CustomerEmail  string
	AmountPaid     Cents
	Metadata       map[string]string
}
