package handlers

import (
	"net/http"

	"github.com/hinatano/liveboard/internal/domain"
	"github.com/hinatano/liveboard/internal/httpserver/deps"
)

type currentResponse struct {
	OK   bool         `json:"ok"`
	Data *domain.Item `json:"data"`
	Next *domain.Item `json:"next"`
	Meta domain.Meta  `json:"meta"`
}

// Current returns the primary "happening now" item, or null between
// activities, plus the next upcoming item.
func Current(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := buildView(r, d)
		writeJSON(w, http.StatusOK, currentResponse{
			OK:   true,
			Data: v.Current,
			Next: v.Next,
			Meta: v.Meta,
		})
	}
}

type currentAllResponse struct {
	OK    bool          `json:"ok"`
	Items []domain.Item `json:"items"`
	Next  *domain.Item  `json:"next"`
	Count int           `json:"count"`
	Meta  domain.Meta   `json:"meta"`
}

// CurrentAll returns every ongoing item. When the operator has disabled
// show-all mode the list is trimmed to the primary item.
func CurrentAll(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := buildView(r, d)

		items := v.Ongoing
		if !v.Settings.ShowAllOngoing && len(items) > 1 {
			items = items[:1]
		}

		writeJSON(w, http.StatusOK, currentAllResponse{
			OK:    true,
			Items: items,
			Next:  v.Next,
			Count: len(items),
			Meta:  v.Meta,
		})
	}
}
