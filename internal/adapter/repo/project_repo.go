package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"beam/internal/domain"
	"beam/internal/infra"
	"beam/internal/sqlinline"
)

// DefaultProjectLimit applies when the caller asks for no positive limit.
const DefaultProjectLimit = 50

// ProjectRepositoryPG implements ProjectRepository using PostgreSQL.
type ProjectRepositoryPG struct {
	sql   infra.SQLExecutor
	newID func() string
}

// NewProjectRepository creates a new project repo.
func NewProjectRepository(sql infra.SQLExecutor) *ProjectRepositoryPG {
	return &ProjectRepositoryPG{sql: sql, newID: uuid.NewString}
}

// Create inserts a project. current_volunteers always starts at zero.
func (r *ProjectRepositoryPG) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = r.newID()
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertProject,
		p.ID, p.Title, p.Description, p.Location, string(p.Status), p.Progress,
		p.TargetDate.Time, p.VolunteersNeeded, p.BeforeImage, p.AfterImage)
	if err := row.Scan(&p.CurrentVolunteers, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("%w: insert project: %w", domain.ErrStore, err)
	}
	return nil
}

// List returns projects newest first, filtered by exact status and a
// case-insensitive location substring.
func (r *ProjectRepositoryPG) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultProjectLimit
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListProjects, string(filter.Status), escapeLike(filter.Location), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list projects: %w", domain.ErrStore, err)
	}
	defer rows.Close()

	items := make([]domain.Project, 0)
	for rows.Next() {
		var (
			p          domain.Project
			status     string
			targetDate time.Time
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Location, &status, &p.Progress, &targetDate,
			&p.VolunteersNeeded, &p.CurrentVolunteers, &p.BeforeImage, &p.AfterImage, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan project: %w", domain.ErrStore, err)
		}
		p.Status = domain.ProjectStatus(status)
		p.TargetDate = domain.Date{Time: targetDate}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list projects: %w", domain.ErrStore, err)
	}
	return items, nil
}

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	s = strings.TrimSpace(s)
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

var _ domain.ProjectRepository = (*ProjectRepositoryPG)(nil)
