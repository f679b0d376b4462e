package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hinatano/liveboard/internal/domain"
	"github.com/redis/go-redis/v9"
)

// MaxOrderEntries caps the persisted manual order so a runaway client
// cannot grow the key without bound.
const MaxOrderEntries = 1000

// Store persists operator state and the schedule snapshot in Redis.
// All operator keys survive restarts; the snapshot carries a TTL so a
// long-dead deployment does not serve an ancient schedule.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// ReadOrder retrieves the manual order. A missing key yields an empty
// order, which callers treat as "no manual curation".
func (s *Store) ReadOrder(ctx context.Context) (domain.ManualOrder, error) {
	var order domain.ManualOrder
	data, err := s.client.Get(ctx, KeyManualOrder).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return order, nil
		}
		return order, fmt.Errorf("failed to read manual order: %w", err)
	}

	if err := json.Unmarshal(data, &order); err != nil {
		return domain.ManualOrder{}, fmt.Errorf("failed to unmarshal manual order: %w", err)
	}
	return order, nil
}

// SaveOrder persists a new manual order, stamping it with the current
// time and truncating it to MaxOrderEntries.
func (s *Store) SaveOrder(ctx context.Context, ids []string) (domain.ManualOrder, error) {
	if len(ids) > MaxOrderEntries {
		ids = ids[:MaxOrderEntries]
	}

	order := domain.ManualOrder{
		UpdatedAt: time.Now().UTC(),
		Order:     ids,
	}

	data, err := json.Marshal(order)
	if err != nil {
		return domain.ManualOrder{}, fmt.Errorf("failed to marshal manual order: %w", err)
	}
	if err := s.client.Set(ctx, KeyManualOrder, data, 0).Err(); err != nil {
		return domain.ManualOrder{}, fmt.Errorf("failed to save manual order: %w", err)
	}
	return order, nil
}

// ReadOverride retrieves the override state. A missing key yields a
// disabled override.
func (s *Store) ReadOverride(ctx context.Context) (domain.Override, error) {
	var ov domain.Override
	data, err := s.client.Get(ctx, KeyOverride).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ov, nil
		}
		return ov, fmt.Errorf("failed to read override: %w", err)
	}

	if err := json.Unmarshal(data, &ov); err != nil {
		return domain.Override{}, fmt.Errorf("failed to unmarshal override: %w", err)
	}
	return ov, nil
}

// SaveOverride persists the override state.
func (s *Store) SaveOverride(ctx context.Context, ov domain.Override) error {
	data, err := json.Marshal(ov)
	if err != nil {
		return fmt.Errorf("failed to marshal override: %w", err)
	}
	if err := s.client.Set(ctx, KeyOverride, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save override: %w", err)
	}
	return nil
}

// ReadSettings retrieves the display settings, falling back to defaults
// when the key is missing.
func (s *Store) ReadSettings(ctx context.Context) (domain.DisplaySettings, error) {
	data, err := s.client.Get(ctx, KeySettings).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.DefaultDisplaySettings(), nil
		}
		return domain.DisplaySettings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings domain.DisplaySettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return domain.DisplaySettings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return settings, nil
}

// SaveSettings persists the display settings.
func (s *Store) SaveSettings(ctx context.Context, settings domain.DisplaySettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.client.Set(ctx, KeySettings, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// persistedSnapshot is the wire form of the last-good schedule.
type persistedSnapshot struct {
	Items     []domain.Item `json:"items"`
	FetchedAt time.Time     `json:"fetched_at"`
}

// SaveSnapshot persists the last successfully fetched schedule with a TTL.
func (s *Store) SaveSnapshot(ctx context.Context, items []domain.Item, fetchedAt time.Time, ttl time.Duration) error {
	data, err := json.Marshal(persistedSnapshot{Items: items, FetchedAt: fetchedAt})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, KeySnapshot, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot retrieves the persisted schedule. The boolean reports
// whether a snapshot was present.
func (s *Store) ReadSnapshot(ctx context.Context) ([]domain.Item, time.Time, bool, error) {
	data, err := s.client.Get(ctx, KeySnapshot).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, time.Time{}, false, nil
		}
		return nil, time.Time{}, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap persistedSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, time.Time{}, false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snap.Items, snap.FetchedAt, true, nil
}
