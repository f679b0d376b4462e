package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/hinatano/liveboard/internal/httpserver/deps"
	"github.com/hinatano/liveboard/internal/httpserver/handlers"
)

func init() { Register(registerBoard) }

// registerBoard mounts the public read API consumed by the board frontend.
func registerBoard(r chi.Router, d deps.Deps) {
	r.Get("/api/schedules", handlers.Schedules(d))
	r.Get("/api/schedules/ics", handlers.ICS(d))
	r.Get("/api/schedules/current", handlers.Current(d))
	r.Get("/api/schedules/current/all", handlers.CurrentAll(d))
	r.Get("/api/schedules/upcoming", handlers.Upcoming(d))
}
