package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/hinatano/liveboard/internal/httpserver/deps"
	"github.com/hinatano/liveboard/internal/httpserver/handlers"
)

func init() { Register(registerState) }

// registerState mounts public reads of the operator state. The board
// frontend polls these to reflect pinned overrides and display toggles.
func registerState(r chi.Router, d deps.Deps) {
	r.Get("/api/schedules/order", handlers.GetOrder(d))
	r.Get("/api/schedules/override", handlers.GetOverride(d))
	r.Get("/api/settings", handlers.GetSettings(d))
}
