package scheduler

import (
	"context"
	"time"

	"github.com/hinatano/liveboard/internal/domain"
	"github.com/hinatano/liveboard/internal/index"
	"github.com/hinatano/liveboard/internal/logger"
	"github.com/hinatano/liveboard/internal/metrics"
	redisstore "github.com/hinatano/liveboard/internal/store/redis"
)

// Source is the schedule fetch contract implemented by the directus and
// schedulefile packages.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Item, error)
}

// ScheduleReloader periodically refreshes the in-memory snapshot from
// the schedule source. A failed refresh marks the snapshot stale but
// keeps serving the last good schedule.
type ScheduleReloader struct {
	source        Source
	store         *redisstore.Store
	snap          *index.Snapshot
	logger        logger.Logger
	interval      time.Duration
	snapshotTTL   time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewScheduleReloader creates a new schedule reloader.
// manualTrigger lets the admin reload endpoint force a refresh.
func NewScheduleReloader(
	source Source,
	store *redisstore.Store,
	snap *index.Snapshot,
	log logger.Logger,
	interval time.Duration,
	snapshotTTL time.Duration,
	manualTrigger chan struct{},
) *ScheduleReloader {
	return &ScheduleReloader{
		source:        source,
		store:         store,
		snap:          snap,
		logger:        log,
		interval:      interval,
		snapshotTTL:   snapshotTTL,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start performs an initial load and begins the periodic reload loop.
// A failed initial load does not abort startup: the board comes up
// degraded and recovers on the next successful refresh.
func (sr *ScheduleReloader) Start(ctx context.Context) {
	if err := sr.Reload(ctx); err != nil {
		sr.logger.Warn("initial schedule load failed, serving degraded until the source recovers",
			logger.String("source", sr.source.Name()),
			logger.Error(err))
	}

	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload schedule",
						logger.String("source", sr.source.Name()),
						logger.Error(err))
				}
			case <-sr.manualTrigger:
				sr.logger.Info("manual schedule reload triggered")
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload schedule",
						logger.String("source", sr.source.Name()),
						logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the reloader.
func (sr *ScheduleReloader) Stop() {
	close(sr.stopCh)
}

// Reload fetches the schedule and updates the snapshot. On failure the
// snapshot is marked stale so resolutions report degraded mode.
func (sr *ScheduleReloader) Reload(ctx context.Context) error {
	started := time.Now()
	items, err := sr.source.Fetch(ctx)
	metrics.ObserveReload(err, time.Since(started).Seconds(), len(items))
	if err != nil {
		sr.snap.MarkStale()
		return err
	}

	sr.snap.Update(items)
	sr.logger.Info("schedule reloaded",
		logger.String("source", sr.source.Name()),
		logger.Int("count", len(items)))

	// Persist the last good schedule (best effort).
	if sr.store != nil {
		if err := sr.store.SaveSnapshot(ctx, items, sr.snap.FetchedAt(), sr.snapshotTTL); err != nil {
			sr.logger.Warn("failed to persist schedule snapshot to redis",
				logger.Error(err))
		}
	}

	return nil
}
