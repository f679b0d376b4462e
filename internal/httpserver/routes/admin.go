package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hinatano/liveboard/internal/httpserver/deps"
	"github.com/hinatano/liveboard/internal/httpserver/handlers"
	"github.com/hinatano/liveboard/internal/httpserver/mw"
)

func init() { Register(registerAdmin) }

// registerAdmin mounts the operator write paths behind CIDR filtering,
// the shared-secret token and a small per-IP rate limit.
func registerAdmin(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             10,
		RefillPerIPPerMin: 30,
		MaxEntries:        1024,
		SweepInterval:     time.Minute,
		IdleTTL:           15 * time.Minute,
		TrustProxy:        d.TrustProxy,
	})

	admin := r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.RequireToken(d.AdminToken, d.Logger),
		limit,
	)

	admin.Post("/api/schedules/order", handlers.SaveOrder(d))
	admin.Post("/api/schedules/override", handlers.SaveOverride(d))
	admin.Put("/api/settings", handlers.SaveSettings(d))
	admin.Post("/reload", handlers.Reload(d))
}
