package handlers

import (
	"net/http"
	"strconv"

	"github.com/hinatano/liveboard/internal/domain"
	"github.com/hinatano/liveboard/internal/httpserver/deps"
)

const (
	defaultUpcomingLimit = 3
	maxUpcomingLimit     = 10
)

type upcomingResponse struct {
	OK    bool          `json:"ok"`
	Items []domain.Item `json:"items"`
	Count int           `json:"count"`
	Meta  domain.Meta   `json:"meta"`
}

// Upcoming returns the next items by start time. The limit query
// parameter is clamped to 1..10 and defaults to 3.
func Upcoming(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultUpcomingLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "limit must be an integer")
				return
			}
			limit = n
		}
		if limit < 1 {
			limit = 1
		}
		if limit > maxUpcomingLimit {
			limit = maxUpcomingLimit
		}

		v := buildView(r, d)
		items := domain.UpcomingItems(v.Ordered, v.Now, limit)

		writeJSON(w, http.StatusOK, upcomingResponse{
			OK:    true,
			Items: items,
			Count: len(items),
			Meta:  v.Meta,
		})
	}
}
