package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"beam/internal/domain"
	"beam/internal/sanitize"
)

type projectRequest struct {
	Title            string  `json:"title" validate:"required,max=200"`
	Description      string  `json:"description" validate:"required,max=5000"`
	Location         string  `json:"location" validate:"required,max=200"`
	Status           string  `json:"status" validate:"required,project_status"`
	Progress         int     `json:"progress" validate:"gte=0,lte=100"`
	TargetDate       string  `json:"target_date" validate:"required,datetime=2006-01-02"`
	VolunteersNeeded int     `json:"volunteers_needed" validate:"gte=0"`
	BeforeImage      *string `json:"before_image" validate:"omitempty,max=1024"`
	AfterImage       *string `json:"after_image" validate:"omitempty,max=1024"`
}

func (req *projectRequest) normalize() {
	req.Title = sanitize.Text(req.Title)
	req.Description = sanitize.Text(req.Description)
	req.Location = sanitize.Text(req.Location)
	req.Status = strings.TrimSpace(req.Status)
	req.TargetDate = strings.TrimSpace(req.TargetDate)
	req.BeforeImage = trimPtr(req.BeforeImage)
	req.AfterImage = trimPtr(req.AfterImage)
}

// ProjectsList filters projects by status and location.
func (a *App) ProjectsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ProjectFilter{
		Status:   domain.ProjectStatus(strings.TrimSpace(q.Get("status"))),
		Location: strings.TrimSpace(q.Get("location")),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(q.Get("limit"))); err == nil {
		filter.Limit = n
	}

	items, err := a.Projects.List(r.Context(), filter)
	if err != nil {
		a.fail(w, r, err, "Failed to fetch projects")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"projects": items})
}

// ProjectsCreate stores a new project. New projects start with no volunteers.
func (a *App) ProjectsCreate(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err, validationMessage(err))
		return
	}
	target, err := domain.ParseDate(req.TargetDate)
	if err != nil {
		a.fail(w, r, fmt.Errorf("%w: target_date: %w", domain.ErrValidation, err), "Invalid target_date")
		return
	}

	project := &domain.Project{
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		Status:           domain.ProjectStatus(req.Status),
		Progress:         req.Progress,
		TargetDate:       target,
		VolunteersNeeded: req.VolunteersNeeded,
		BeforeImage:      req.BeforeImage,
		AfterImage:       req.AfterImage,
	}
	if err := a.Projects.Create(r.Context(), project); err != nil {
		a.fail(w, r, err, "Internal server error")
		return
	}
	a.Logger.Info().Str("project_id", project.ID).Str("status", req.Status).Msg("project created")
	a.json(w, http.StatusCreated, map[string]any{"success": true, "project": project})
}
