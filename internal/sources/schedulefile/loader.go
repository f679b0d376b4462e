package schedulefile

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hinatano/liveboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// fileItem is a schedule entry in schedule.yaml.
// Timestamps are raw strings and go through the same normalization as
// rows fetched from the remote source.
type fileItem struct {
	ID          string `yaml:"id"`
	Event       string `yaml:"event"`
	Description string `yaml:"description"`
	StartTime   string `yaml:"start_time"`
	EndTime     string `yaml:"end_time"`
	IsAllDay    bool   `yaml:"is_all_day"`
}

// fileSchema is the root structure of schedule.yaml.
type fileSchema struct {
	Items []fileItem `yaml:"items"`
}

// Source loads the schedule from a local YAML file. It is the dev and
// fallback counterpart of the remote source and satisfies the same
// fetch contract.
type Source struct {
	filePath string
	offset   time.Duration
}

// NewSource creates a schedule source backed by a YAML file.
func NewSource(filePath string, offset time.Duration) *Source {
	return &Source{filePath: filePath, offset: offset}
}

// Name identifies the source in logs.
func (s *Source) Name() string { return "schedulefile" }

// Fetch reads and parses the schedule file. The context is accepted for
// contract symmetry with the remote source; file reads are not cancelable.
func (s *Source) Fetch(_ context.Context) ([]domain.Item, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse schedule yaml: %w", err)
	}

	items := make([]domain.Item, 0, len(schema.Items))
	for _, entry := range schema.Items {
		if entry.ID == "" {
			continue
		}
		items = append(items, domain.Item{
			ID:          entry.ID,
			Title:       entry.Event,
			Description: entry.Description,
			StartTime:   s.parse(entry.StartTime),
			EndTime:     s.parse(entry.EndTime),
			AllDay:      entry.IsAllDay,
		})
	}

	return items, nil
}

func (s *Source) parse(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, ok := domain.ParseInstant(raw, s.offset)
	if !ok {
		return nil
	}
	return &t
}
