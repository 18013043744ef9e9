package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"beam/internal/domain"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("payment: api key is required")

// ErrMissingWebhookSecret indicates that webhook verification has no signing secret.
var ErrMissingWebhookSecret = errors.New("payment: webhook secret is required")

// Options configures the Stripe client.
type Options struct {
	APIKey        string
	WebhookSecret string
	// BaseURL overrides the Stripe API endpoint. Used by tests.
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zerolog.Logger
}

// Client performs calls to the Stripe API and verifies webhook payloads.
type Client struct {
	api           *client.API
	webhookSecret string
	logger        zerolog.Logger
}

// NewClient builds a Stripe client with its own backends so no global SDK
// state is shared between instances.
func NewClient(opts Options) (*Client, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	secret := strings.TrimSpace(opts.WebhookSecret)
	if secret == "" {
		return nil, ErrMissingWebhookSecret
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("provider", "stripe").Logger()
	}

	cfg := &stripe.BackendConfig{
		HTTPClient:    opts.HTTPClient,
		LeveledLogger: leveledLogger{logger: logger},
	}
	if opts.BaseURL != "" {
		cfg.URL = stripe.String(strings.TrimRight(opts.BaseURL, "/"))
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, cfg)
	api := client.New(key, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	return &Client{api: api, webhookSecret: secret, logger: logger}, nil
}

// CreatePaymentIntent opens a charge with automatic payment methods enabled.
func (c *Client) CreatePaymentIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(req.Amount)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(req.ReceiptEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		c.logger.Error().Err(err).Int64("amount_cents", int64(req.Amount)).Msg("create payment intent failed")
		return nil, fmt.Errorf("%w: create payment intent: %w", domain.ErrGateway, err)
	}
	return toPaymentIntent(pi), nil
}

// RetrievePaymentIntent fetches the current state of an intent.
func (c *Client) RetrievePaymentIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: payment intent id is required", domain.ErrValidation)
	}
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := c.api.PaymentIntents.Get(id, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("payment intent %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: retrieve payment intent: %w", domain.ErrGateway, err)
	}
	return toPaymentIntent(pi), nil
}

// CreateCustomer registers a donor with the gateway.
func (c *Client) CreateCustomer(ctx context.Context, email, name string) (*domain.Customer, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx

	cus, err := c.api.Customers.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: create customer: %w", domain.ErrGateway, err)
	}
	return &domain.Customer{ID: cus.ID, Email: cus.Email, Name: cus.Name}, nil
}

// CreateSubscription starts a monthly subscription in the incomplete state.
// The first invoice's payment intent is expanded so its client secret can be
// handed to the browser.
func (c *Client) CreateSubscription(ctx context.Context, customerID, priceID string, metadata map[string]string) (*domain.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
	}
	params.AddExpand("latest_invoice.payment_intent")
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	sub, err := c.api.Subscriptions.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: create subscription: %w", domain.ErrGateway, err)
	}

	out := &domain.Subscription{ID: sub.ID, Status: string(sub.Status)}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		out.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}
	return out, nil
}

func toPaymentIntent(pi *stripe.PaymentIntent) *domain.PaymentIntent {
	return &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       domain.Cents(pi.Amount),
		Currency:     string(pi.Currency),
	}
}

// leveledLogger routes SDK logs into zerolog.
type leveledLogger struct {
	logger zerolog.Logger
}

func (l leveledLogger) Debugf(format string, v ...interface{}) { l.logger.Debug().Msgf(format, v...) }
func (l leveledLogger) Infof(format string, v ...interface{})  { l.logger.Debug().Msgf(format, v...) }
func (l leveledLogger) Warnf(format string, v ...interface{})  { l.logger.Warn().Msgf(format, v...) }
func (l leveledLogger) Errorf(format string, v ...interface{}) { l.logger.Error().Msgf(format, v...) }
