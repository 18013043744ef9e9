package handlers

import (
	"bytes"
	"net/http"

	"beam/internal/domain"
)

const highlightCount = 3

// Home renders the landing page with the newest projects as highlights.
// A store failure degrades to the built-in showcase instead of an error page.
func (a *App) Home(w http.ResponseWriter, r *http.Request) {
	highlights, err := a.Projects.List(r.Context(), domain.ProjectFilter{Limit: highlightCount})
	if err != nil {
		a.Logger.Warn().Err(err).Msg("load project highlights")
		highlights = nil
	}

	var buf bytes.Buffer
	if err := a.Pages.RenderHome(&buf, r, highlights); err != nil {
		a.Logger.Error().Err(err).Msg("render home page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
