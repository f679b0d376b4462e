package directus

import (
	"time"

	"github.com/hinatano/liveboard/internal/domain"
)

// Mapper converts Directus rows to domain items, normalizing timestamps
// to absolute instants with the configured civil offset.
type Mapper struct {
	offset time.Duration
}

// NewMapper creates a mapper that interprets zone-naive timestamps as
// local civil time at the given fixed offset.
func NewMapper(offset time.Duration) *Mapper {
	return &Mapper{offset: offset}
}

// Map converts raw rows to domain items. Rows without an id are dropped.
// Unparseable timestamps become absent bounds, never an error.
func (m *Mapper) Map(rows []RawItem) []domain.Item {
	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		if row.ID.String() == "" {
			continue
		}
		items = append(items, domain.Item{
			ID:          row.ID.String(),
			Title:       row.Event,
			Description: row.Description,
			StartTime:   m.parse(row.StartTime),
			EndTime:     m.parse(row.EndTime),
			AllDay:      row.IsAllDay,
		})
	}
	return items
}

func (m *Mapper) parse(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, ok := domain.ParseInstant(*raw, m.offset)
	if !ok {
		return nil
	}
	return &t
}
