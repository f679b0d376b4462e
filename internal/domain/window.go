package domain

import "time"

// Window is the normalized temporal interval of an item.
type Window struct {
	Start  *time.Time
	End    *time.Time
	AllDay bool
}

// BuildWindow normalizes an item's interval. An interval whose end does not
// lie strictly after its start is demoted to open-ended instead of being
// kept as a zero or negative duration window. All-day items pass through
// unchanged; their eligibility is judged against civil-day boundaries, not
// these instants.
func BuildWindow(it Item) Window {
	w := Window{Start: it.StartTime, End: it.EndTime, AllDay: it.AllDay}
	if !w.AllDay && w.Start != nil && w.End != nil && !w.End.After(*w.Start) {
		w.End = nil
	}
	return w
}

func buildWindows(items []Item) []Window {
	windows := make([]Window, len(items))
	for i, it := range items {
		windows[i] = BuildWindow(it)
	}
	return windows
}
