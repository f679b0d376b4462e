package domain

import "time"

// Item is a single activity slot on the live board.
//
// It is NOT tied to Directus, Redis or any other collaborator.
// All inputs (CMS fetch, local file, admin override payloads) are mapped
// into this structure before the resolution engine sees them.
//
// StartTime/EndTime are absolute instants already normalized from the raw
// source representation; nil means the corresponding bound is unknown.
type Item struct {
	// ID is the opaque identifier from the source collection.
	// Unique among items of one schedule; ad-hoc override items may leave it empty.
	ID string `json:"id"`

	// Title is the display name of the activity.
	Title string `json:"event"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	// AllDay marks an item active for its entire local civil day.
	AllDay bool `json:"is_all_day"`
}

// ManualOrder is the administrator-maintained ordering override.
// It is replaced wholesale on each save and read-only to the engine.
type ManualOrder struct {
	UpdatedAt time.Time `json:"updated_at"`
	Order     []string  `json:"order"`
}

// Override is a pinned "current" activity. The item may reference an
// existing schedule entry by id or describe an ad-hoc one; partially
// missing bounds are resolved by the compositor.
type Override struct {
	Enabled bool  `json:"enabled"`
	Item    *Item `json:"item"`
}

// DisplaySettings are operator toggles affecting presentation, not timing.
type DisplaySettings struct {
	ShowAllOngoing  bool     `json:"show_all_ongoing"`
	ShowAllDayAsNow bool     `json:"show_all_day_as_now"`
	HiddenIDs       []string `json:"hidden_ids"`
}

// DefaultDisplaySettings returns the settings used when nothing was persisted yet.
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{HiddenIDs: []string{}}
}
