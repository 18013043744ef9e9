package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"beam/internal/domain"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type memDonations struct {
	mu      sync.Mutex
	rows    []*domain.Donation
	invoice map[string]bool
	err     error
	calls   int
}

func (m *memDonations) Create(_ context.Context, d *domain.Donation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	d.ID = fmt.Sprintf("don-%d", len(m.rows)+1)
	d.CreatedAt, d.UpdatedAt = fixedNow, fixedNow
	m.rows = append(m.rows, d)
	return nil
}

func (m *memDonations) ListRecent(_ context.Context, limit int) ([]domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Donation, 0, len(m.rows))
	for i := len(m.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *m.rows[i])
	}
	return out, nil
}

func (m *memDonations) UpdateStatusByReference(_ context.Context, ref string, status domain.DonationStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, d := range m.rows {
		if d.PaymentIntentID == ref && d.Status == domain.DonationPending {
			d.Status = status
			n++
		}
	}
	return n, nil
}

func (m *memDonations) CreateRecurring(_ context.Context, d *domain.Donation) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	if m.invoice == nil {
		m.invoice = map[string]bool{}
	}
	if d.InvoiceID != nil {
		if m.invoice[*d.InvoiceID] {
			return false, nil
		}
		m.invoice[*d.InvoiceID] = true
	}
	d.ID = fmt.Sprintf("don-%d", len(m.rows)+1)
	m.rows = append(m.rows, d)
	return true, nil
}

type memProjects struct {
	items      []domain.Project
	lastFilter domain.ProjectFilter
	created    []*domain.Project
	err        error
}

func (m *memProjects) Create(_ context.Context, p *domain.Project) error {
	if m.err != nil {
		return m.err
	}
	p.ID = "proj-1"
	p.CurrentVolunteers = 0
	p.CreatedAt, p.UpdatedAt = fixedNow, fixedNow
	m.created = append(m.created, p)
	return nil
}

// List applies the same filter semantics as the SQL query.
func (m *memProjects) List(_ context.Context, f domain.ProjectFilter) ([]domain.Project, error) {
	m.lastFilter = f
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Project, 0)
	for _, p := range m.items {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type memVolunteers struct {
	byEmail map[string]*domain.Volunteer
	err     error
}

func (m *memVolunteers) Upsert(_ context.Context, v *domain.Volunteer) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.byEmail == nil {
		m.byEmail = map[string]*domain.Volunteer{}
	}
	if existing, ok := m.byEmail[v.Email]; ok {
		v.ID = existing.ID
		v.Status = existing.Status
		v.CreatedAt = existing.CreatedAt
		v.UpdatedAt = fixedNow.Add(time.Hour)
		copied := *v
		m.byEmail[v.Email] = &copied
		return false, nil
	}
	v.ID = fmt.Sprintf("vol-%d", len(m.byEmail)+1)
	v.Status = domain.VolunteerPending
	v.CreatedAt, v.UpdatedAt = fixedNow, fixedNow
	copied := *v
	m.byEmail[v.Email] = &copied
	return true, nil
}

func (m *memVolunteers) ListRecent(context.Context, int) ([]domain.Volunteer, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Volunteer, 0, len(m.byEmail))
	for _, v := range m.byEmail {
		out = append(out, *v)
	}
	return out, nil
}

func (m *memVolunteers) UpdateStatus(context.Context, string, domain.VolunteerStatus) error {
	return nil
}

type fakeGateway struct {
	requests []domain.PaymentIntentRequest
	intent   *domain.PaymentIntent
	err      error
}

func (f *fakeGateway) CreatePaymentIntent(_ context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	if f.intent != nil {
		return f.intent, nil
	}
	return &domain.PaymentIntent{
		ID:           "pi_test_1",
		ClientSecret: "pi_test_1_secret_xyz",
		Status:       "requires_payment_method",
		Amount:       req.Amount,
		Currency:     req.Currency,
	}, nil
}

func (f *fakeGateway) RetrievePaymentIntent(_ context.Context, id string) (*domain.PaymentIntent, error) {
	if f.err != nil {
		return nil, f.err
	}
	if id != "pi_test_1" {
		return nil, fmt.Errorf("payment intent %s: %w", id, domain.ErrNotFound)
	}
	return &domain.PaymentIntent{ID: id, Status: "succeeded", Amount: 5000}, nil
}

type stubRenderer struct {
	highlights []domain.Project
}

func (s *stubRenderer) RenderHome(w io.Writer, _ *http.Request, highlights []domain.Project) error {
	s.highlights = highlights
	_, err := io.WriteString(w, "<html><body>BEAM</body></html>")
	return err
}

type pingResult struct{ err error }

func (p pingResult) Ping(context.Context) error { return p.err }

func newTestApp() (*App, *memDonations, *fakeGateway) {
	donations := &memDonations{}
	gateway := &fakeGateway{}
	app := &App{
		Donations:  donations,
		Projects:   &memProjects{},
		Volunteers: &memVolunteers{},
		Payments:   gateway,
		Pages:      &stubRenderer{},
		Currency:   "usd",
		Logger:     zerolog.Nop(),
	}
	return app, donations, gateway
}
