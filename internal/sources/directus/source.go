package directus

import (
	"context"
	"time"

	"github.com/hinatano/liveboard/internal/domain"
)

// Source combines the Directus client and mapper behind the schedule
// source contract used by the reloader.
type Source struct {
	client *Client
	mapper *Mapper
}

// NewSource creates a schedule source backed by a Directus collection.
func NewSource(baseURL, token, collection string, timeout, offset time.Duration) *Source {
	return &Source{
		client: NewClient(baseURL, token, collection, timeout),
		mapper: NewMapper(offset),
	}
}

// Name identifies the source in logs.
func (s *Source) Name() string { return "directus" }

// Fetch retrieves the full schedule as normalized domain items.
func (s *Source) Fetch(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.client.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Map(rows), nil
}
