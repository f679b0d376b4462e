package handlers

import (
	"net/http"

	"github.com/hinatano/liveboard/internal/domain"
	"github.com/hinatano/liveboard/internal/httpserver/deps"
)

type schedulesResponse struct {
	OK    bool          `json:"ok"`
	Items []domain.Item `json:"items"`
	Count int           `json:"count"`
	Meta  domain.Meta   `json:"meta"`
}

// Schedules returns the full schedule in display order.
func Schedules(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := buildView(r, d)
		writeJSON(w, http.StatusOK, schedulesResponse{
			OK:    true,
			Items: v.Ordered,
			Count: len(v.Ordered),
			Meta:  v.Meta,
		})
	}
}
