package handlers

import (
	"net/http"

	"github.com/hinatano/liveboard/internal/httpserver/deps"
	"github.com/hinatano/liveboard/internal/logger"
)

type reloadResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Reload triggers an immediate schedule refresh from the source.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual schedule reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusAccepted, reloadResponse{OK: true, Message: "reload triggered"})
		default:
			d.Logger.Warn("schedule reload already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusTooManyRequests, reloadResponse{OK: false, Message: "reload already in progress"})
		}
	}
}
