package scheduler

import (
	"context"

	"github.com/hinatano/liveboard/internal/index"
	"github.com/hinatano/liveboard/internal/logger"
	redisstore "github.com/hinatano/liveboard/internal/store/redis"
)

// SnapshotSyncer seeds the in-memory snapshot from the persisted
// schedule on startup, so the board can serve the last known schedule
// before the first live fetch completes.
type SnapshotSyncer struct {
	store  *redisstore.Store
	snap   *index.Snapshot
	logger logger.Logger
}

// NewSnapshotSyncer creates a new snapshot syncer.
func NewSnapshotSyncer(
	store *redisstore.Store,
	snap *index.Snapshot,
	log logger.Logger,
) *SnapshotSyncer {
	return &SnapshotSyncer{
		store:  store,
		snap:   snap,
		logger: log,
	}
}

// Sync restores the persisted schedule into the snapshot. The restored
// data stays marked stale until a live fetch succeeds.
func (ss *SnapshotSyncer) Sync(ctx context.Context) error {
	ss.logger.Info("restoring schedule snapshot from redis")

	items, fetchedAt, found, err := ss.store.ReadSnapshot(ctx)
	if err != nil {
		return err
	}
	if !found {
		ss.logger.Info("no schedule snapshot found in redis")
		return nil
	}

	ss.snap.Restore(items, fetchedAt)
	ss.logger.Info("restored schedule snapshot",
		logger.Int("count", len(items)),
		logger.Time("fetched_at", fetchedAt))

	return nil
}
