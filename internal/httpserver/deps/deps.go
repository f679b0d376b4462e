package deps

import (
	"time"

	"github.com/hinatano/liveboard/internal/domain"
	"github.com/hinatano/liveboard/internal/index"
	"github.com/hinatano/liveboard/internal/logger"
	redisstore "github.com/hinatano/liveboard/internal/store/redis"
	"github.com/redis/go-redis/v9"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	RedisClient *redis.Client    // Redis client connection
	Store       *redisstore.Store // Operator state and snapshot persistence
	Snapshot    *index.Snapshot   // In-memory schedule snapshot
	Resolver    *domain.Resolver  // Current/next resolution engine

	AdminToken    string        // Shared secret for admin write paths (empty disables the check)
	AllowedCIDRS  []string      // IPs allowed on admin endpoints
	TrustProxy    bool          // true if running behind a trusted reverse proxy (e.g., cloudflared)
	ReloadTrigger chan struct{} // Channel to trigger manual schedule reload
}

// Now returns the injected clock, falling back to time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
