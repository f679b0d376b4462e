package domain

import "testing"

func TestOrderItems(t *testing.T) {
	one := Item{ID: "1", Title: "opening", StartTime: tp(at(9, 0))}
	two := Item{ID: "2", Title: "relay", StartTime: tp(at(10, 0))}
	three := Item{ID: "3", Title: "tug of war", StartTime: tp(at(11, 0))}
	unscheduled := Item{ID: "4", Title: "lunch"}

	tests := []struct {
		name  string
		items []Item
		order []string
		want  []string
	}{
		{
			name:  "manual order first then remainder by start",
			items: []Item{one, two, three},
			order: []string{"3", "1"},
			want:  []string{"3", "1", "2"},
		},
		{
			name:  "empty order sorts by start ascending",
			items: []Item{three, one, two},
			order: nil,
			want:  []string{"1", "2", "3"},
		},
		{
			name:  "unknown ids dropped",
			items: []Item{one, two},
			order: []string{"9", "2", "404"},
			want:  []string{"2", "1"},
		},
		{
			name:  "duplicate ids keep first occurrence",
			items: []Item{one, two, three},
			order: []string{"2", "2", "1"},
			want:  []string{"2", "1", "3"},
		},
		{
			name:  "missing start sorts as epoch zero and surfaces first",
			items: []Item{one, unscheduled, two},
			order: nil,
			want:  []string{"4", "1", "2"},
		},
		{
			name:  "full manual coverage",
			items: []Item{one, two, three},
			order: []string{"2", "3", "1"},
			want:  []string{"2", "3", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrderItems(tt.items, ManualOrder{Order: tt.order})
			sameIDs(t, got, tt.want)
		})
	}
}

func TestOrderItemsDoesNotMutateInput(t *testing.T) {
	items := []Item{
		{ID: "b", StartTime: tp(at(10, 0))},
		{ID: "a", StartTime: tp(at(9, 0))},
	}
	_ = OrderItems(items, ManualOrder{})
	if items[0].ID != "b" || items[1].ID != "a" {
		t.Errorf("input slice was reordered: %v", ids(items))
	}
}
