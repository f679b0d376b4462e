package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hinatano/liveboard/internal/domain"
	"github.com/hinatano/liveboard/internal/index"
	"github.com/hinatano/liveboard/internal/logger"
)

type fakeSource struct {
	items []domain.Item
	err   error
	calls atomic.Int32
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Fetch(_ context.Context) ([]domain.Item, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func TestReloadUpdatesSnapshot(t *testing.T) {
	log := logger.New("error", false)
	snap := index.NewSnapshot()
	src := &fakeSource{items: []domain.Item{{ID: "1"}, {ID: "2"}}}

	sr := NewScheduleReloader(src, nil, snap, log, time.Minute, time.Hour, make(chan struct{}))

	if err := sr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	items, healthy := snap.Items()
	if len(items) != 2 || !healthy {
		t.Errorf("snapshot after reload: %d items healthy=%v, want 2 items healthy", len(items), healthy)
	}
}

func TestReloadFailureKeepsLastGoodSchedule(t *testing.T) {
	log := logger.New("error", false)
	snap := index.NewSnapshot()
	src := &fakeSource{items: []domain.Item{{ID: "1"}}}

	sr := NewScheduleReloader(src, nil, snap, log, time.Minute, time.Hour, make(chan struct{}))

	if err := sr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	src.err = errors.New("source down")
	if err := sr.Reload(context.Background()); err == nil {
		t.Fatal("Reload should report the fetch error")
	}

	items, healthy := snap.Items()
	if len(items) != 1 {
		t.Errorf("failed reload must keep the last good schedule, got %d items", len(items))
	}
	if healthy {
		t.Error("failed reload must mark the snapshot stale")
	}
}

func TestManualTriggerCausesReload(t *testing.T) {
	log := logger.New("error", false)
	snap := index.NewSnapshot()
	src := &fakeSource{items: []domain.Item{{ID: "1"}}}
	trigger := make(chan struct{})

	sr := NewScheduleReloader(src, nil, snap, log, time.Hour, time.Hour, trigger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sr.Start(ctx)
	defer sr.Stop()

	trigger <- struct{}{}

	deadline := time.After(2 * time.Second)
	for src.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("manual trigger did not cause a reload, calls=%d", src.calls.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}
