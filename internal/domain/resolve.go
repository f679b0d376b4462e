package domain

import "time"

// Input is the immutable snapshot a single resolution runs on. Items come
// from the source collaborator, the rest from the persistence collaborator;
// the engine never mutates any of it.
type Input struct {
	Items    []Item
	Order    ManualOrder
	Override Override
	Settings DisplaySettings
	// SourceOK is false when the CMS fetch failed and Items is a stale or
	// empty snapshot. The resolution still runs; the result is flagged.
	SourceOK bool
}

// Meta carries resolution metadata for the caller.
type Meta struct {
	OverrideActive       bool      `json:"override"`
	Degraded             bool      `json:"degraded,omitempty"`
	ManualOrderUpdatedAt time.Time `json:"manual_updated_at"`
}

// Result is the outcome of one resolution.
type Result struct {
	// Current is the primary "happening now" item, nil when nothing is ongoing.
	Current *Item
	// OngoingAll is the full ongoing set, override first when active.
	// Display filtering (hidden ids, single-item mode) is the caller's concern.
	OngoingAll []Item
	// Next is the chronologically next upcoming item after Current.
	Next *Item
	// Ordered is the manual-order-resolved total sequence of all items.
	Ordered []Item
	Meta    Meta
}

// Resolver is the current/next activity resolution engine. It is a pure
// function of its input and safe for concurrent use.
type Resolver struct {
	params Params
}

func NewResolver(p Params) *Resolver {
	return &Resolver{params: p}
}

func (r *Resolver) Params() Params { return r.params }

// Resolve computes the current item(s), the next item and metadata for one
// instant. now is captured once by the caller and truncated to the minute
// here so repeated calls within the same minute are identical.
func (r *Resolver) Resolve(in Input, now time.Time) Result {
	now = now.Truncate(time.Minute)

	ordered := OrderItems(in.Items, in.Order)
	ongoing := r.params.Ongoing(ordered, now, in.Settings.ShowAllDayAsNow)
	comp := r.params.Compose(in.Override, ongoing, ordered, now, in.Settings.ShowAllDayAsNow, in.SourceOK)

	res := Result{
		OngoingAll: comp.Items,
		Ordered:    ordered,
		Meta: Meta{
			OverrideActive:       comp.OverrideActive,
			Degraded:             !in.SourceOK || comp.BestEffort,
			ManualOrderUpdatedAt: in.Order.UpdatedAt,
		},
	}
	if len(comp.Items) > 0 {
		current := comp.Items[0]
		res.Current = &current
	}
	res.Next = NextAfter(ordered, res.Current, now)
	return res
}
