package domain

import "time"

// Composition is the outcome of layering the administrator override on top
// of the resolved ongoing set.
type Composition struct {
	// Items is the ongoing set, override first when it claims "current".
	Items []Item
	// OverrideActive reports that the override item occupies the current slot.
	OverrideActive bool
	// BestEffort is set when inference ran without the full schedule
	// because the source fetch failed.
	BestEffort bool
}

// Compose applies the override to the ongoing set.
//
// A disabled override passes the set through unchanged. An enabled one has
// its bounds resolved by precedence (payload values, then the scheduled item
// with the same id, then inference), is re-validated against the
// non-negative-duration invariant, and is judged by the same rules as the
// ongoing resolver. When it is not currently active the set is returned
// unmodified; the override stays stored and may become current later.
func (p Params) Compose(ov Override, ongoing, ordered []Item, now time.Time, showAllDayAsNow bool, sourceOK bool) Composition {
	if !ov.Enabled || ov.Item == nil {
		return Composition{Items: ongoing}
	}
	now = now.Truncate(time.Minute)

	item := *ov.Item
	if item.StartTime == nil || item.EndTime == nil {
		for _, it := range ordered {
			if item.ID != "" && it.ID == item.ID {
				if item.StartTime == nil {
					item.StartTime = it.StartTime
				}
				if item.EndTime == nil {
					item.EndTime = it.EndTime
				}
				break
			}
		}
	}

	bestEffort := !sourceOK
	if item.StartTime != nil && item.EndTime == nil && sourceOK {
		// The next scheduled start closes the override's window; with no
		// later start the maximum assumed duration caps it. When the
		// schedule could not be fetched the end stays open and the
		// start-only rule below applies the cap instead.
		upper := p.closeAfter(*item.StartTime, sortedStarts(buildWindows(ordered)))
		if upper.After(*item.StartTime) {
			item.EndTime = &upper
		}
	}
	if item.StartTime == nil && item.EndTime != nil {
		s := item.EndTime.Add(-p.InferredLead)
		item.StartTime = &s
	}

	// Same invariant as the window builder: a non-positive duration loses
	// its end rather than producing an empty window.
	if item.StartTime != nil && item.EndTime != nil && !item.EndTime.After(*item.StartTime) {
		item.EndTime = nil
	}

	useAsCurrent := p.currentlyActive(item, now)
	if item.AllDay && !showAllDayAsNow {
		useAsCurrent = false
	}
	if !useAsCurrent {
		return Composition{Items: ongoing, BestEffort: bestEffort}
	}

	out := make([]Item, 0, len(ongoing)+1)
	out = append(out, item)
	for _, it := range ongoing {
		if it.ID != item.ID {
			out = append(out, it)
		}
	}
	return Composition{Items: out, OverrideActive: true, BestEffort: bestEffort}
}

// currentlyActive evaluates the ongoing rules against a single resolved item.
func (p Params) currentlyActive(it Item, now time.Time) bool {
	w := BuildWindow(it)
	switch {
	case w.AllDay:
		if w.Start == nil {
			return false
		}
		dayStart, dayEnd := p.civilDay(now)
		return !w.Start.Before(dayStart) && w.Start.Before(dayEnd)
	case w.Start != nil && w.End != nil:
		return !now.Before(*w.Start) && now.Before(*w.End)
	case w.Start != nil:
		return !now.Before(*w.Start) && now.Before(w.Start.Add(p.MaxOngoing))
	default:
		return false
	}
}
