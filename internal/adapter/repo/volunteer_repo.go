package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"beam/internal/domain"
	"beam/internal/infra"
	"beam/internal/sqlinline"
)

// VolunteerRepositoryPG implements VolunteerRepository using PostgreSQL.
type VolunteerRepositoryPG struct {
	sql   infra.SQLExecutor
	newID func() string
}

// NewVolunteerRepository creates a new volunteer repo.
func NewVolunteerRepository(sql infra.SQLExecutor) *VolunteerRepositoryPG {
	return &VolunteerRepositoryPG{sql: sql, newID: uuid.NewString}
}

// Upsert inserts a pending volunteer or, when the email is already known,
// overwrites the mutable fields and keeps the stored status. A single
// statement covers both branches so concurrent submissions cannot duplicate rows.
func (r *VolunteerRepositoryPG) Upsert(ctx context.Context, v *domain.Volunteer) (bool, error) {
	candidateID := v.ID
	if candidateID == "" {
		candidateID = r.newID()
	}
	status := v.Status
	if status == "" {
		status = domain.VolunteerPending
	}
	row := r.sql.QueryRow(ctx, sqlinline.QUpsertVolunteer,
		candidateID, v.FirstName, v.LastName, v.Email, v.Phone, v.City,
		nonNil(v.Interests), nonNil(v.Availability), v.Experience, v.Message, string(status))

	var (
		id, storedStatus string
		inserted         bool
	)
	if err := row.Scan(&id, &storedStatus, &v.CreatedAt, &v.UpdatedAt, &inserted); err != nil {
		return false, fmt.Errorf("%w: upsert volunteer: %w", domain.ErrStore, err)
	}
	v.ID = id
	v.Status = domain.VolunteerStatus(storedStatus)
	return inserted, nil
}

// ListRecent returns the newest volunteers.
func (r *VolunteerRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.Volunteer, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListVolunteers, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list volunteers: %w", domain.ErrStore, err)
	}
	defer rows.Close()

	items := make([]domain.Volunteer, 0)
	for rows.Next() {
		var (
			v      domain.Volunteer
			status string
		)
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone, &v.City, &v.Interests,
			&v.Availability, &v.Experience, &v.Message, &status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan volunteer: %w", domain.ErrStore, err)
		}
		v.Status = domain.VolunteerStatus(status)
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list volunteers: %w", domain.ErrStore, err)
	}
	return items, nil
}

// UpdateStatus sets the onboarding status of the volunteer with email.
func (r *VolunteerRepositoryPG) UpdateStatus(ctx context.Context, email string, status domain.VolunteerStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown volunteer status %q", domain.ErrValidation, status)
	}
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateVolunteerStatus, email, string(status))
	if err != nil {
		return fmt.Errorf("%w: update volunteer status: %w", domain.ErrStore, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("volunteer %s: %w", email, domain.ErrNotFound)
	}
	return nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

var _ domain.VolunteerRepository = (*VolunteerRepositoryPG)(nil)
