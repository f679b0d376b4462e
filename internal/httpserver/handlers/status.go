package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/hinatano/liveboard/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	ItemsLoaded *int   `json:"items_loaded,omitempty"`
	LastFetch   string `json:"last_fetch,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Error       string `json:"error,omitempty"`
}

type statusResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Status reports the operational state of each component for the admin
// dashboard.
func Status(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemCount := d.Snapshot.Count()
		_, healthy := d.Snapshot.Items()

		lastFetch := "never"
		if fetchedAt := d.Snapshot.FetchedAt(); !fetchedAt.IsZero() {
			lastFetch = fetchedAt.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"schedule": {
				OK:          healthy,
				ItemsLoaded: &itemCount,
				LastFetch:   lastFetch,
			},
			"redis": checkRedis(d),
			"resolver": {
				OK:   true,
				Mode: "minute-resolution",
			},
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func determineMode(components map[string]componentStatus) string {
	schedule := components["schedule"]
	if schedule.ItemsLoaded != nil && *schedule.ItemsLoaded == 0 && !schedule.OK {
		return "critical"
	}
	if !schedule.OK {
		return "degraded"
	}
	if redisComp, exists := components["redis"]; exists && !redisComp.OK {
		return "degraded"
	}
	return "nominal"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "operator-state-unavailable",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "operator-state-unavailable",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "operator-state-enabled",
	}
}
