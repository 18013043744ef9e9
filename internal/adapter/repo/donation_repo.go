package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"beam/internal/domain"
	"beam/internal/infra"
	"beam/internal/sqlinline"
)

// DonationRepositoryPG implements DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	sql   infra.SQLExecutor
	newID func() string
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql, newID: uuid.NewString}
}

// Create inserts a new donation record.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) error {
	if donation.ID == "" {
		donation.ID = r.newID()
	}
	if donation.Status == "" {
		donation.Status = domain.DonationPending
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonation,
		donation.ID, int64(donation.Amount), string(donation.Frequency), donation.ProjectID,
		donation.FirstName, donation.LastName, donation.Email, donation.Message,
		donation.PaymentIntentID, string(donation.Status))
	if err := row.Scan(&donation.CreatedAt, &donation.UpdatedAt); err != nil {
		return fmt.Errorf("%w: insert donation: %w", domain.ErrStore, err)
	}
	return nil
}

// CreateRecurring inserts a completed subscription cycle keyed by invoice id.
func (r *DonationRepositoryPG) CreateRecurring(ctx context.Context, donation *domain.Donation) (bool, error) {
	if donation.ID == "" {
		donation.ID = r.newID()
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertRecurringDonation,
		donation.ID, int64(donation.Amount), string(donation.Frequency), donation.ProjectID,
		donation.FirstName, donation.LastName, donation.Email, donation.Message,
		donation.PaymentIntentID, donation.InvoiceID, string(donation.Status))
	if err := row.Scan(&donation.CreatedAt, &donation.UpdatedAt); err != nil {
		if infra.IsNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: insert recurring donation: %w", domain.ErrStore, err)
	}
	return true, nil
}

// UpdateStatusByReference moves pending donations with the external reference to status.
func (r *DonationRepositoryPG) UpdateStatusByReference(ctx context.Context, reference string, status domain.DonationStatus) (int64, error) {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateDonationStatus, reference, string(status))
	if err != nil {
		return 0, fmt.Errorf("%w: update donation status: %w", domain.ErrStore, err)
	}
	return tag.RowsAffected(), nil
}

// ListRecent returns recent donations limited by the input value.
func (r *DonationRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonations, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list donations: %w", domain.ErrStore, err)
	}
	defer rows.Close()

	items := make([]domain.Donation, 0)
	for rows.Next() {
		var (
			d                    domain.Donation
			amount               int64
			frequency, status    string
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&d.ID, &amount, &frequency, &d.ProjectID, &d.FirstName, &d.LastName, &d.Email,
			&d.Message, &d.PaymentIntentID, &d.InvoiceID, &status, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan donation: %w", domain.ErrStore, err)
		}
		d.Amount = domain.Cents(amount)
		d.Frequency = domain.DonationFrequency(frequency)
		d.Status = domain.DonationStatus(status)
		d.CreatedAt, d.UpdatedAt = createdAt, updatedAt
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list donations: %w", domain.ErrStore, err)
	}
	return items, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
