package domain

import (
	"sort"
	"time"
)

// Params holds the tunables of the resolution engine.
//
// MaxOngoing and InferredLead are product constants inherited from the
// source data (missing end times in the CMS); they are injected rather than
// hard-coded because the intent behind them may evolve.
type Params struct {
	// Offset is the single fixed civil offset of the deployment (e.g. 9h).
	Offset time.Duration
	// MaxOngoing caps a start-only window when no later start closes it.
	MaxOngoing time.Duration
	// InferredLead is the assumed duration before an end-only override's end.
	InferredLead time.Duration
}

// DefaultParams match the original deployment: JST, 6h cap, 1h lead.
func DefaultParams() Params {
	return Params{
		Offset:       9 * time.Hour,
		MaxOngoing:   6 * time.Hour,
		InferredLead: time.Hour,
	}
}

// Ongoing computes the duplicate-free set of items whose resolved window
// contains now, in rule order:
//
//	rule 0: all-day items dated today (only when showAllDayAsNow is set)
//	rule 1: bounded windows, start <= now < end (end exclusive)
//	rule 2: end-only windows never qualify; with no start there is no
//	        activation point to judge against
//	rule 3: start-only windows, closed by the next scheduled start or by
//	        MaxOngoing when none follows
//
// now is truncated to the minute so repeated calls within the same minute
// see an identical clock.
func (p Params) Ongoing(ordered []Item, now time.Time, showAllDayAsNow bool) []Item {
	now = now.Truncate(time.Minute)
	windows := buildWindows(ordered)

	var out []Item
	seen := make(map[string]bool, len(ordered))
	add := func(it Item) {
		if seen[it.ID] {
			return
		}
		seen[it.ID] = true
		out = append(out, it)
	}

	if showAllDayAsNow {
		dayStart, dayEnd := p.civilDay(now)
		for i, it := range ordered {
			w := windows[i]
			if !w.AllDay || w.Start == nil {
				continue
			}
			if !w.Start.Before(dayStart) && w.Start.Before(dayEnd) {
				add(it)
			}
		}
	}

	for i, it := range ordered {
		w := windows[i]
		if w.AllDay || w.Start == nil || w.End == nil {
			continue
		}
		if !now.Before(*w.Start) && now.Before(*w.End) {
			add(it)
		}
	}

	starts := sortedStarts(windows)
	for i, it := range ordered {
		w := windows[i]
		if w.AllDay || w.Start == nil || w.End != nil {
			continue
		}
		upper := p.closeAfter(*w.Start, starts)
		if !now.Before(*w.Start) && now.Before(upper) {
			// Emit the normalized view so a demoted interval never leaks
			// its invalid end downstream.
			it.EndTime = w.End
			add(it)
		}
	}

	return out
}

// civilDay returns the [start, end) absolute window of the local civil day
// containing now, under the configured fixed offset.
func (p Params) civilDay(now time.Time) (time.Time, time.Time) {
	loc := time.FixedZone("", int(p.Offset/time.Second))
	l := now.In(loc)
	start := time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

// sortedStarts collects the start instants of non-all-day windows, ascending.
func sortedStarts(windows []Window) []time.Time {
	starts := make([]time.Time, 0, len(windows))
	for _, w := range windows {
		if w.AllDay || w.Start == nil {
			continue
		}
		starts = append(starts, *w.Start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })
	return starts
}

// closeAfter infers the upper bound of a window opening at start: the first
// strictly later scheduled start, else start plus the maximum assumed
// activity duration. Back-to-back schedules thereby imply their own ends.
func (p Params) closeAfter(start time.Time, starts []time.Time) time.Time {
	for _, s := range starts {
		if s.After(start) {
			return s
		}
	}
	return start.Add(p.MaxOngoing)
}
