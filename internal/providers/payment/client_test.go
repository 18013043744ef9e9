package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beam/internal/domain"
)

const (
	testKey    = "sk_test_123"
	testSecret = "whsec_test"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{APIKey: testKey, WebhookSecret: testSecret, BaseURL: srv.URL, HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func sign(secret string, payload []byte, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(Options{WebhookSecret: testSecret}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if _, err := NewClient(Options{APIKey: testKey}); !errors.Is(err, ErrMissingWebhookSecret) {
		t.Fatalf("expected ErrMissingWebhookSecret, got %v", err)
	}
}

func TestCreatePaymentIntentSendsCentsAndMetadata(t *testing.T) {
	var form map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer "+testKey {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"pi_123","object":"payment_intent","amount":5000,"currency":"usd","status":"requires_payment_method","client_secret":"pi_123_secret_abc"}`)
	})

	pi, err := c.CreatePaymentIntent(context.Background(), domain.PaymentIntentRequest{
		Amount:       domain.Cents(5000),
		Metadata:     map[string]string{"project": "General Fund", "frequency": "one-time"},
		ReceiptEmail: "a@b.com",
	})
	if err != nil {
		t.Fatalf("CreatePaymentIntent returned error: %v", err)
	}
	if pi.ID != "pi_123" || pi.ClientSecret != "pi_123_secret_abc" || pi.Amount != 5000 {
		t.Fatalf("unexpected intent: %+v", pi)
	}

	expected := map[string]string{
		"amount":                             "5000",
		"currency":                           "usd",
		"receipt_email":                      "a@b.com",
		"automatic_payment_methods[enabled]": "true",
		"metadata[project]":                  "General Fund",
		"metadata[frequency]":                "one-time",
	}
	for k, v := range expected {
		if form[k] != v {
			t.Fatalf("form[%s] = %q, want %q (form=%v)", k, form[k], v, form)
		}
	}
}

func TestCreatePaymentIntentMapsGatewayErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error":{"type":"card_error","message":"declined","code":"card_declined"}}`)
	})

	_, err := c.CreatePaymentIntent(context.Background(), domain.PaymentIntentRequest{Amount: 100})
	if !errors.Is(err, domain.ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
}

func TestCreatePaymentIntentRejectsNonPositiveAmount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("gateway should not be called")
	})
	if _, err := c.CreatePaymentIntent(context.Background(), domain.PaymentIntentRequest{}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRetrievePaymentIntent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/payment_intents/pi_ok":
			fmt.Fprint(w, `{"id":"pi_ok","object":"payment_intent","amount":2500,"currency":"usd","status":"succeeded"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":{"type":"invalid_request_error","message":"No such payment_intent","code":"resource_missing"}}`)
		}
	})

	pi, err := c.RetrievePaymentIntent(context.Background(), "pi_ok")
	if err != nil {
		t.Fatalf("RetrievePaymentIntent returned error: %v", err)
	}
	if pi.Status != "succeeded" || pi.Amount != 2500 {
		t.Fatalf("unexpected intent: %+v", pi)
	}

	if _, err := c.RetrievePaymentIntent(context.Background(), "pi_missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateSubscriptionExpandsFirstInvoice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/customers":
			fmt.Fprint(w, `{"id":"cus_1","object":"customer","email":"a@b.com","name":"A B"}`)
		case "/v1/subscriptions":
			_ = r.ParseForm()
			if r.PostForm.Get("payment_behavior") != "default_incomplete" {
				t.Errorf("payment_behavior = %q", r.PostForm.Get("payment_behavior"))
			}
			if r.PostForm.Get("expand[0]") != "latest_invoice.payment_intent" {
				t.Errorf("expand = %q", r.PostForm.Get("expand[0]"))
			}
			fmt.Fprint(w, `{"id":"sub_1","object":"subscription","status":"incomplete","customer":"cus_1",
				"latest_invoice":{"id":"in_1","object":"invoice","payment_intent":{"id":"pi_1","object":"payment_intent","client_secret":"pi_1_secret"}}}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	cus, err := c.CreateCustomer(context.Background(), "a@b.com", "A B")
	if err != nil {
		t.Fatalf("CreateCustomer returned error: %v", err)
	}
	sub, err := c.CreateSubscription(context.Background(), cus.ID, "price_monthly", map[string]string{"donor_email": "a@b.com"})
	if err != nil {
		t.Fatalf("CreateSubscription returned error: %v", err)
	}
	if sub.ID != "sub_1" || sub.CustomerID != "cus_1" || sub.ClientSecret != "pi_1_secret" {
		t.Fatalf("unexpected subscription: %+v", sub)
	}
}

func TestConstructEventRejectsBadSignatures(t *testing.T) {
	c, err := NewClient(Options{APIKey: testKey, WebhookSecret: testSecret})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	payload := []byte(`{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","object":"payment_intent"}}}`)

	cases := map[string]string{
		"missing":      "",
		"garbage":      "not-a-signature",
		"wrong secret": sign("whsec_other", payload, time.Now()),
		"stale":        sign(testSecret, payload, time.Now().Add(-time.Hour)),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := c.ConstructEvent(payload, header); !errors.Is(err, domain.ErrAuthentication) {
				t.Fatalf("expected ErrAuthentication, got %v", err)
			}
		})
	}
}

func TestConstructEventDecodesKinds(t *testing.T) {
	c, err := NewClient(Options{APIKey: testKey, WebhookSecret: testSecret})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	t.Run("payment intent", func(t *testing.T) {
		payload := []byte(`{"id":"evt_1","object":"event","type":"payment_intent.payment_failed","data":{"object":{"id":"pi_9","object":"payment_intent","amount":700,"metadata":{"project":"General Fund"},"last_payment_error":{"message":"insufficient funds"}}}}`)
		ev, err := c.ConstructEvent(payload, sign(testSecret, payload, time.Now()))
		if err != nil {
			t.Fatalf("ConstructEvent returned error: %v", err)
		}
		if ev.Kind != domain.EventPaymentFailed || ev.Intent == nil {
			t.Fatalf("unexpected event: %+v", ev)
		}
		if ev.Intent.ID != "pi_9" || ev.Intent.Amount != 700 || ev.Intent.LastError != "insufficient funds" {
			t.Fatalf("unexpected intent: %+v", ev.Intent)
		}
	})

	t.Run("invoice", func(t *testing.T) {
		payload := []byte(`{"id":"evt_2","object":"event","type":"invoice.payment_succeeded","data":{"object":{"id":"in_1","object":"invoice","amount_paid":2500,"customer_email":"donor@example.org","subscription":"sub_9","metadata":{"donor_name":"Ada Lovelace"}}}}`)
		ev, err := c.ConstructEvent(payload, sign(testSecret, payload, time.Now()))
		if err != nil {
			t.Fatalf("ConstructEvent returned error: %v", err)
		}
		if ev.Kind != domain.EventInvoicePaid || ev.Invoice == nil {
			t.Fatalf("unexpected event: %+v", ev)
		}
		inv := ev.Invoice
		if inv.ID != "in_1" || inv.SubscriptionID != "sub_9" || inv.AmountPaid != 2500 || inv.CustomerEmail != "donor@example.org" {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
		if inv.Metadata["donor_name"] != "Ada Lovelace" {
			t.Fatalf("metadata lost: %+v", inv.Metadata)
		}
	})

	t.Run("unrecognized", func(t *testing.T) {
		payload := []byte(`{"id":"evt_3","object":"event","type":"customer.created","data":{"object":{"id":"cus_1","object":"customer"}}}`)
		ev, err := c.ConstructEvent(payload, sign(testSecret, payload, time.Now()))
		if err != nil {
			t.Fatalf("ConstructEvent returned error: %v", err)
		}
		if ev.Kind != domain.EventUnrecognized || ev.Intent != nil || ev.Invoice != nil {
			t.Fatalf("unexpected event: %+v", ev)
		}
	})
}
