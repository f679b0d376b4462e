package domain

import "testing"

func TestNextAfter(t *testing.T) {
	one := Item{ID: "1", StartTime: tp(at(10, 0))}
	two := Item{ID: "2", StartTime: tp(at(11, 0))}
	three := Item{ID: "3", StartTime: tp(at(12, 0))}
	noStart := Item{ID: "4"}
	ordered := []Item{one, two, three, noStart}

	tests := []struct {
		name string
		ref  *Item
		now  [2]int
		want string // "" = nil
	}{
		{name: "no reference returns first upcoming", ref: nil, now: [2]int{9, 0}, want: "1"},
		{name: "reference skips itself", ref: &one, now: [2]int{9, 0}, want: "2"},
		{name: "reference mid sequence", ref: &two, now: [2]int{9, 0}, want: "3"},
		{name: "reference is last upcoming", ref: &three, now: [2]int{9, 0}, want: ""},
		{name: "reference not in subsequence", ref: &Item{ID: "override-x"}, now: [2]int{9, 0}, want: "1"},
		{name: "past items drop out", ref: nil, now: [2]int{11, 30}, want: "3"},
		{name: "start equal to now is still upcoming", ref: nil, now: [2]int{12, 0}, want: "3"},
		{name: "nothing upcoming", ref: &one, now: [2]int{13, 0}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextAfter(ordered, tt.ref, at(tt.now[0], tt.now[1]))
			switch {
			case tt.want == "" && got != nil:
				t.Errorf("next = %q, want none", got.ID)
			case tt.want != "" && got == nil:
				t.Errorf("next = none, want %q", tt.want)
			case tt.want != "" && got.ID != tt.want:
				t.Errorf("next = %q, want %q", got.ID, tt.want)
			}
		})
	}
}

func TestUpcomingItems(t *testing.T) {
	ordered := []Item{
		{ID: "1", StartTime: tp(at(10, 0))},
		{ID: "2", StartTime: tp(at(11, 0))},
		{ID: "3", StartTime: tp(at(12, 0))},
		{ID: "4"},
	}

	got := UpcomingItems(ordered, at(10, 30), 2)
	sameIDs(t, got, []string{"2", "3"})

	got = UpcomingItems(ordered, at(13, 0), 3)
	sameIDs(t, got, nil)
}
