package index

import (
	"testing"
	"time"

	"github.com/hinatano/liveboard/internal/domain"
)

func TestSnapshotLifecycle(t *testing.T) {
	snap := NewSnapshot()

	items, healthy := snap.Items()
	if len(items) != 0 || healthy {
		t.Fatalf("fresh snapshot should be empty and unhealthy, got %d items healthy=%v", len(items), healthy)
	}

	snap.Update([]domain.Item{{ID: "1"}, {ID: "2"}})
	items, healthy = snap.Items()
	if len(items) != 2 || !healthy {
		t.Fatalf("after Update: got %d items healthy=%v, want 2 items healthy", len(items), healthy)
	}
	if snap.Count() != 2 {
		t.Errorf("Count() = %d, want 2", snap.Count())
	}

	snap.MarkStale()
	items, healthy = snap.Items()
	if len(items) != 2 || healthy {
		t.Fatalf("MarkStale must keep items but drop health, got %d items healthy=%v", len(items), healthy)
	}
}

func TestSnapshotRestoreStaysStale(t *testing.T) {
	snap := NewSnapshot()
	fetched := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	snap.Restore([]domain.Item{{ID: "1"}}, fetched)

	items, healthy := snap.Items()
	if len(items) != 1 || healthy {
		t.Fatalf("restored snapshot must serve items but stay stale, got %d healthy=%v", len(items), healthy)
	}
	if !snap.FetchedAt().Equal(fetched) {
		t.Errorf("FetchedAt() = %v, want %v", snap.FetchedAt(), fetched)
	}
}

func TestSnapshotItemsReturnsCopy(t *testing.T) {
	snap := NewSnapshot()
	snap.Update([]domain.Item{{ID: "1", Title: "opening"}})

	items, _ := snap.Items()
	items[0].Title = "mutated"

	again, _ := snap.Items()
	if again[0].Title != "opening" {
		t.Error("mutating the returned slice leaked into the snapshot")
	}
}
