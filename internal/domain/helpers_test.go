package domain

import (
	"testing"
	"time"
)

var jst = time.FixedZone("JST", 9*60*60)

// at builds an instant from local JST clock values on 2025-06-01.
func at(hour, min int) time.Time {
	return time.Date(2025, 6, 1, hour, min, 0, 0, jst)
}

func tp(t time.Time) *time.Time { return &t }

func testParams() Params {
	return Params{
		Offset:       9 * time.Hour,
		MaxOngoing:   6 * time.Hour,
		InferredLead: time.Hour,
	}
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func sameIDs(t *testing.T, got []Item, want []string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("ids = %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("ids = %v, want %v", gotIDs, want)
		}
	}
}
