package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hinatano/liveboard/internal/domain"
	"github.com/hinatano/liveboard/internal/httpserver/deps"
	"github.com/hinatano/liveboard/internal/logger"
	"github.com/hinatano/liveboard/internal/metrics"
)

type orderResponse struct {
	OK   bool               `json:"ok"`
	Data domain.ManualOrder `json:"data"`
}

// GetOrder returns the persisted manual order.
func GetOrder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := d.Store.ReadOrder(r.Context())
		if err != nil {
			d.Logger.Error("failed to read manual order", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to read manual order")
			return
		}
		writeJSON(w, http.StatusOK, orderResponse{OK: true, Data: order})
	}
}

type saveOrderRequest struct {
	Order []string `json:"order"`
}

// SaveOrder replaces the manual order wholesale. Unknown ids are kept;
// the engine drops them at resolution time so a stale order entry is
// harmless.
func SaveOrder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Order == nil {
			writeError(w, http.StatusBadRequest, "order must be an array of item ids")
			return
		}

		order, err := d.Store.SaveOrder(r.Context(), req.Order)
		if err != nil {
			d.Logger.Error("failed to save manual order", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save manual order")
			return
		}

		metrics.AdminWriteTotal.WithLabelValues("order").Inc()
		d.Logger.Info("manual order updated", logger.Int("count", len(order.Order)))
		writeJSON(w, http.StatusOK, orderResponse{OK: true, Data: order})
	}
}
