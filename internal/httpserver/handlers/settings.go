package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hinatano/liveboard/internal/domain"
	"github.com/hinatano/liveboard/internal/httpserver/deps"
	"github.com/hinatano/liveboard/internal/logger"
	"github.com/hinatano/liveboard/internal/metrics"
)

type settingsResponse struct {
	OK   bool                   `json:"ok"`
	Data domain.DisplaySettings `json:"data"`
}

// GetSettings returns the persisted display settings.
func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := d.Store.ReadSettings(r.Context())
		if err != nil {
			d.Logger.Error("failed to read settings", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to read settings")
			return
		}
		writeJSON(w, http.StatusOK, settingsResponse{OK: true, Data: settings})
	}
}

// saveSettingsRequest uses pointers so a PUT can change one toggle
// without resetting the others.
type saveSettingsRequest struct {
	ShowAllOngoing  *bool     `json:"show_all_ongoing"`
	ShowAllDayAsNow *bool     `json:"show_all_day_as_now"`
	HiddenIDs       *[]string `json:"hidden_ids"`
}

// SaveSettings merges the request into the persisted settings.
func SaveSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		settings, err := d.Store.ReadSettings(r.Context())
		if err != nil {
			d.Logger.Error("failed to read settings", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to read settings")
			return
		}

		if req.ShowAllOngoing != nil {
			settings.ShowAllOngoing = *req.ShowAllOngoing
		}
		if req.ShowAllDayAsNow != nil {
			settings.ShowAllDayAsNow = *req.ShowAllDayAsNow
		}
		if req.HiddenIDs != nil {
			settings.HiddenIDs = *req.HiddenIDs
		}
		if settings.HiddenIDs == nil {
			settings.HiddenIDs = []string{}
		}

		if err := d.Store.SaveSettings(r.Context(), settings); err != nil {
			d.Logger.Error("failed to save settings", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save settings")
			return
		}

		metrics.AdminWriteTotal.WithLabelValues("settings").Inc()
		d.Logger.Info("display settings updated",
			logger.Bool("show_all_ongoing", settings.ShowAllOngoing),
			logger.Bool("show_all_day_as_now", settings.ShowAllDayAsNow),
			logger.Int("hidden_ids", len(settings.HiddenIDs)))
		writeJSON(w, http.StatusOK, settingsResponse{OK: true, Data: settings})
	}
}
