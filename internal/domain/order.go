package domain

import "sort"

// OrderItems merges the persisted manual ordering with the item list into a
// deterministic total order: manually ordered ids first by position (first
// occurrence wins, ids with no matching item are dropped), then the rest
// ascending by start time. Items without a start sort as epoch 0 so that
// unscheduled slots surface first rather than last.
func OrderItems(items []Item, order ManualOrder) []Item {
	byID := make(map[string]Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	out := make([]Item, 0, len(items))
	placed := make(map[string]bool, len(order.Order))
	for _, id := range order.Order {
		if placed[id] {
			continue
		}
		it, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, it)
		placed[id] = true
	}

	rest := make([]Item, 0, len(items)-len(out))
	for _, it := range items {
		if !placed[it.ID] {
			rest = append(rest, it)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return startEpochMilli(rest[i]) < startEpochMilli(rest[j])
	})

	return append(out, rest...)
}

func startEpochMilli(it Item) int64 {
	if it.StartTime == nil {
		return 0
	}
	return it.StartTime.UnixMilli()
}
