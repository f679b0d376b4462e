package domain

import (
	"sort"
	"time"
)

// upcomingFrom builds the future subsequence: items with a start time at or
// after now, ascending by start.
func upcomingFrom(ordered []Item, now time.Time) []Item {
	upcoming := make([]Item, 0, len(ordered))
	for _, it := range ordered {
		if it.StartTime != nil && !it.StartTime.Before(now) {
			upcoming = append(upcoming, it)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartTime.Before(*upcoming[j].StartTime)
	})
	return upcoming
}

// NextAfter selects the chronologically next upcoming item.
//
// When ref appears in the future subsequence the element immediately after
// it is returned, never ref itself. A ref outside the subsequence (an
// override not present in the schedule, or no current item at all) yields
// the first element. An empty subsequence yields nil.
func NextAfter(ordered []Item, ref *Item, now time.Time) *Item {
	now = now.Truncate(time.Minute)
	upcoming := upcomingFrom(ordered, now)
	if len(upcoming) == 0 {
		return nil
	}
	if ref != nil {
		for i := range upcoming {
			if upcoming[i].ID == ref.ID {
				if i+1 < len(upcoming) {
					next := upcoming[i+1]
					return &next
				}
				return nil
			}
		}
	}
	next := upcoming[0]
	return &next
}

// UpcomingItems returns the first limit items of the future subsequence.
func UpcomingItems(ordered []Item, now time.Time, limit int) []Item {
	upcoming := upcomingFrom(ordered, now.Truncate(time.Minute))
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
