package domain

import (
	"testing"
	"time"
)

func TestOngoingBoundedWindows(t *testing.T) {
	items := []Item{
		{ID: "1", StartTime: tp(at(9, 0)), EndTime: tp(at(10, 0))},
		{ID: "2", StartTime: tp(at(10, 0)), EndTime: tp(at(11, 0))},
	}
	p := testParams()

	tests := []struct {
		name string
		now  time.Time
		want []string
	}{
		{name: "inside first window", now: at(9, 59), want: []string{"1"}},
		{name: "end is exclusive, start inclusive", now: at(10, 0), want: []string{"2"}},
		{name: "before everything", now: at(8, 0), want: nil},
		{name: "after everything", now: at(11, 0), want: nil},
		{name: "seconds are truncated away", now: at(10, 0).Add(45 * time.Second), want: []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Ongoing(items, tt.now, false)
			sameIDs(t, got, tt.want)
		})
	}
}

func TestOngoingStartOnlyClosure(t *testing.T) {
	a := Item{ID: "A", StartTime: tp(at(10, 0))}
	b := Item{ID: "B", StartTime: tp(at(10, 30))}
	p := testParams()

	tests := []struct {
		name string
		now  time.Time
		want []string
	}{
		{name: "A runs until B starts", now: at(10, 20), want: []string{"A"}},
		{name: "B takes over at its start", now: at(10, 30), want: []string{"B"}},
		{name: "after the handoff", now: at(10, 31), want: []string{"B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Ongoing([]Item{a, b}, tt.now, false)
			sameIDs(t, got, tt.want)
		})
	}
}

func TestOngoingFallbackDuration(t *testing.T) {
	only := []Item{{ID: "solo", StartTime: tp(at(10, 0))}}
	p := testParams()

	tests := []struct {
		name  string
		now   time.Time
		wants bool
	}{
		{name: "just started", now: at(10, 0), wants: true},
		{name: "one minute before the cap", now: at(15, 59), wants: true},
		{name: "exactly at the cap", now: at(16, 0), wants: false},
		{name: "past the cap", now: at(16, 1), wants: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Ongoing(only, tt.now, false)
			if (len(got) == 1) != tt.wants {
				t.Errorf("ongoing = %v, want ongoing=%v", ids(got), tt.wants)
			}
		})
	}
}

func TestOngoingEndOnlyNeverSurfaces(t *testing.T) {
	items := []Item{{ID: "tail", EndTime: tp(at(18, 0))}}
	p := testParams()

	for _, now := range []time.Time{at(9, 0), at(17, 59), at(18, 30)} {
		if got := p.Ongoing(items, now, false); len(got) != 0 {
			t.Errorf("end-only item surfaced as ongoing at %v: %v", now, ids(got))
		}
	}
}

func TestOngoingInvalidIntervalTreatedAsStartOnly(t *testing.T) {
	items := []Item{{ID: "bad", StartTime: tp(at(10, 0)), EndTime: tp(at(9, 0))}}
	p := testParams()

	got := p.Ongoing(items, at(10, 30), false)
	sameIDs(t, got, []string{"bad"})
	// The demoted end must not leak into the output.
	if got[0].EndTime != nil {
		t.Errorf("demoted interval kept its invalid end: %v", got[0].EndTime)
	}
}

func TestOngoingAllDayGating(t *testing.T) {
	allDay := Item{ID: "festival", AllDay: true, StartTime: tp(at(0, 0))}
	yesterday := Item{ID: "old", AllDay: true, StartTime: tp(at(0, 0).Add(-24 * time.Hour))}
	lateToday := Item{ID: "night", AllDay: true, StartTime: tp(at(23, 30))}
	p := testParams()

	tests := []struct {
		name            string
		showAllDayAsNow bool
		now             time.Time
		want            []string
	}{
		{name: "gated off", showAllDayAsNow: false, now: at(12, 0), want: nil},
		{name: "gated on picks items dated today", showAllDayAsNow: true, now: at(12, 0), want: []string{"festival", "night"}},
		{name: "early morning still the same civil day", showAllDayAsNow: true, now: at(0, 10), want: []string{"festival", "night"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Ongoing([]Item{allDay, yesterday, lateToday}, tt.now, tt.showAllDayAsNow)
			sameIDs(t, got, tt.want)
		})
	}
}

func TestOngoingAllDayNeverMatchesClockRules(t *testing.T) {
	// Even with a bounded window on it, an all-day item is current only via
	// the civil-day rule.
	item := Item{ID: "allday", AllDay: true, StartTime: tp(at(9, 0)), EndTime: tp(at(17, 0))}
	p := testParams()

	if got := p.Ongoing([]Item{item}, at(10, 0), false); len(got) != 0 {
		t.Errorf("all-day item surfaced with gating off: %v", ids(got))
	}
	got := p.Ongoing([]Item{item}, at(10, 0), true)
	sameIDs(t, got, []string{"allday"})
}

func TestOngoingRulePriorityOrdersOutput(t *testing.T) {
	allDay := Item{ID: "allday", AllDay: true, StartTime: tp(at(0, 0))}
	bounded := Item{ID: "bounded", StartTime: tp(at(9, 0)), EndTime: tp(at(11, 0))}
	startOnly := Item{ID: "open", StartTime: tp(at(10, 0))}
	p := testParams()

	// startOnly is capped by nothing later, so it overlaps bounded at 10:30.
	got := p.Ongoing([]Item{startOnly, bounded, allDay}, at(10, 30), true)
	sameIDs(t, got, []string{"allday", "bounded", "open"})
}

func TestOngoingDeterministic(t *testing.T) {
	items := []Item{
		{ID: "1", StartTime: tp(at(9, 0)), EndTime: tp(at(12, 0))},
		{ID: "2", StartTime: tp(at(10, 0))},
		{ID: "3", AllDay: true, StartTime: tp(at(0, 0))},
	}
	p := testParams()
	now := at(10, 15)

	first := p.Ongoing(items, now, true)
	second := p.Ongoing(items, now, true)
	sameIDs(t, second, ids(first))
}
