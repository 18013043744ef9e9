package handlers

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports whether the record store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports liveness and, when a store is configured, its reachability.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	if a.Store == nil {
		a.json(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := a.Store.Ping(ctx); err != nil {
		a.Logger.Warn().Err(err).Msg("store ping failed")
		a.json(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "store": "unreachable"})
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "ok", "store": "ok"})
}
