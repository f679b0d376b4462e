package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hinatano/liveboard/internal/domain"
	"github.com/hinatano/liveboard/internal/httpserver/deps"
	"github.com/hinatano/liveboard/internal/logger"
	"github.com/hinatano/liveboard/internal/metrics"
)

type overrideResponse struct {
	OK   bool            `json:"ok"`
	Data domain.Override `json:"data"`
}

// GetOverride returns the persisted override state.
func GetOverride(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ov, err := d.Store.ReadOverride(r.Context())
		if err != nil {
			d.Logger.Error("failed to read override", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to read override")
			return
		}
		writeJSON(w, http.StatusOK, overrideResponse{OK: true, Data: ov})
	}
}

// overrideItemPayload carries timestamps as raw strings so admin tools
// can submit the same formats the CMS uses. Unlike source rows, a
// malformed timestamp here is rejected: the operator is present and can
// fix the input.
type overrideItemPayload struct {
	ID          string `json:"id"`
	Event       string `json:"event"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAllDay    bool   `json:"is_all_day"`
}

type saveOverrideRequest struct {
	Enabled bool                 `json:"enabled"`
	Item    *overrideItemPayload `json:"item"`
}

// SaveOverride persists the operator override.
func SaveOverride(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveOverrideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Enabled && req.Item == nil {
			writeError(w, http.StatusBadRequest, "an enabled override needs an item")
			return
		}

		ov := domain.Override{Enabled: req.Enabled}
		if req.Item != nil {
			offset := d.Resolver.Params().Offset

			start, ok := parseOptionalInstant(req.Item.StartTime, offset)
			if !ok {
				writeError(w, http.StatusBadRequest, "start_time is not a valid timestamp")
				return
			}
			end, ok := parseOptionalInstant(req.Item.EndTime, offset)
			if !ok {
				writeError(w, http.StatusBadRequest, "end_time is not a valid timestamp")
				return
			}

			ov.Item = &domain.Item{
				ID:          req.Item.ID,
				Title:       req.Item.Event,
				Description: req.Item.Description,
				StartTime:   start,
				EndTime:     end,
				AllDay:      req.Item.IsAllDay,
			}
		}

		if err := d.Store.SaveOverride(r.Context(), ov); err != nil {
			d.Logger.Error("failed to save override", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save override")
			return
		}

		metrics.AdminWriteTotal.WithLabelValues("override").Inc()
		d.Logger.Info("override updated", logger.Bool("enabled", ov.Enabled))
		writeJSON(w, http.StatusOK, overrideResponse{OK: true, Data: ov})
	}
}

// parseOptionalInstant parses a timestamp string that may be empty.
// The boolean is false only for present but unparseable values.
func parseOptionalInstant(raw string, offset time.Duration) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, ok := domain.ParseInstant(raw, offset)
	if !ok {
		return nil, false
	}
	return &t, true
}
