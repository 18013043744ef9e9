package domain

import "context"

// DonationRepository handles donation persistence.
type DonationRepository interface {
	// Create inserts a donation and fills ID and timestamps.
	Create(ctx context.Context, donation *Donation) error
	ListRecent(ctx context.Context, limit int) ([]Donation, error)
	// UpdateStatusByReference moves pending donations with the given external
	// reference to status and returns the number of rows changed.
	UpdateStatusByReference(ctx context.Context, reference string, status DonationStatus) (int64, error)
	// CreateRecurring inserts one subscription cycle. It reports false when
	// the invoice was already recorded.
	CreateRecurring(ctx context.Context, donation *Donation) (bool, error)
}

// ProjectRepository handles project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	List(ctx context.Context, filter ProjectFilter) ([]Project, error)
}

// VolunteerRepository handles volunteer persistence.
type VolunteerRepository interface {
	// Upsert inserts or updates by email and reports whether a row was created.
	Upsert(ctx context.Context, volunteer *Volunteer) (bool, error)
	ListRecent(ctx context.Context, limit int) ([]Volunteer, error)
	UpdateStatus(ctx context.Context, email string, status VolunteerStatus) error
}
