package domain

import "time"

// VolunteerStatus enumerates volunteer onboarding states.
type VolunteerStatus string

const (
	VolunteerPending  VolunteerStatus = "pending"
	VolunteerApproved VolunteerStatus = "approved"
	VolunteerActive   VolunteerStatus = "active"
)

// Valid reports whether s is a known volunteer status.
func (s VolunteerStatus) Valid() bool {
	switch s {
	case VolunteerPending, VolunteerApproved, VolunteerActive:
		return true
	}
	return false
}

// Volunteer is a community member who signed up to help. Email is the natural key.
type Volunteer struct {
	ID           string          `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone"`
	City         string          `json:"city"`
	Interests    []string        `json:"interests"`
	Availability []string        `json:"availability"`
	Experience   string          `json:"experience"`
	Message      *string         `json:"message"`
	Status       VolunteerStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
