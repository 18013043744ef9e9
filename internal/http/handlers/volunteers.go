package handlers

import (
	"net/http"
	"strings"

	"beam/internal/domain"
	"beam/internal/sanitize"
)

const (
	msgVolunteerCreated = "Volunteer application submitted successfully"
	msgVolunteerUpdated = "Volunteer profile updated successfully"
)

type volunteerRequest struct {
	FirstName    string   `json:"firstName" validate:"required,max=100"`
	LastName     string   `json:"lastName" validate:"required,max=100"`
	Email        string   `json:"email" validate:"required,email,max=254"`
	Phone        *string  `json:"phone" validate:"omitempty,max=40"`
	City         string   `json:"city" validate:"required,max=120"`
	Interests    []string `json:"interests" validate:"required,dive,max=100"`
	Availability []string `json:"availability" validate:"required,dive,max=100"`
	Experience   string   `json:"experience" validate:"required,max=100"`
	Message      *string  `json:"message" validate:"omitempty,max=2000"`
}

func (req *volunteerRequest) normalize() {
	req.FirstName = sanitize.Text(req.FirstName)
	req.LastName = sanitize.Text(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = trimPtr(req.Phone)
	req.City = sanitize.Text(req.City)
	if req.Interests != nil {
		req.Interests = trimAll(req.Interests)
	}
	if req.Availability != nil {
		req.Availability = trimAll(req.Availability)
	}
	req.Experience = strings.TrimSpace(req.Experience)
	req.Message = sanitize.Optional(req.Message)
}

// VolunteersCreate inserts a volunteer, or refreshes the profile of a known email.
func (a *App) VolunteersCreate(w http.ResponseWriter, r *http.Request) {
	var req volunteerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err, validationMessage(err))
		return
	}

	volunteer := &domain.Volunteer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		City:         req.City,
		Interests:    req.Interests,
		Availability: req.Availability,
		Experience:   req.Experience,
		Message:      req.Message,
		Status:       domain.VolunteerPending,
	}
	created, err := a.Volunteers.Upsert(r.Context(), volunteer)
	if err != nil {
		a.fail(w, r, err, "Internal server error")
		return
	}

	msg := msgVolunteerUpdated
	if created {
		msg = msgVolunteerCreated
	}
	a.Logger.Info().Str("volunteer_id", volunteer.ID).Bool("created", created).Msg("volunteer saved")
	a.json(w, http.StatusOK, map[string]any{"success": true, "volunteer": volunteer, "message": msg})
}

// VolunteersList returns the most recent volunteers.
func (a *App) VolunteersList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Volunteers.ListRecent(r.Context(), recentLimit)
	if err != nil {
		a.fail(w, r, err, "Failed to fetch volunteers")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"volunteers": items})
}
