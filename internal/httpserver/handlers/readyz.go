package handlers

import (
	"net/http"

	"github.com/hinatano/liveboard/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready    bool `json:"ready"`
	Schedule bool `json:"schedule"`
}

// Readyz reports whether the board can serve a meaningful schedule.
// A stale snapshot still counts as ready; the board serves the last
// good schedule in degraded mode rather than going dark.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, healthy := d.Snapshot.Items()

		ready := d.Snapshot.Count() > 0 || healthy
		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, readyzResponse{
			Ready:    ready,
			Schedule: healthy,
		})
	}
}
