package handlers

import (
	"net/http"
	"time"

	"github.com/hinatano/liveboard/internal/domain"
	"github.com/hinatano/liveboard/internal/httpserver/deps"
	"github.com/hinatano/liveboard/internal/logger"
	"github.com/hinatano/liveboard/internal/metrics"
)

// boardView is one resolved, display-filtered view of the schedule.
// The engine result is pure timing; hidden ids and single-item mode are
// applied here because they affect what the board shows, not what is
// happening.
type boardView struct {
	Now      time.Time
	Current  *domain.Item
	Ongoing  []domain.Item
	Ordered  []domain.Item
	Next     *domain.Item
	Meta     domain.Meta
	Settings domain.DisplaySettings
}

// buildView gathers engine input from the snapshot and the store, runs
// one resolution and applies the hidden-id filter. Store reads degrade
// to defaults so a Redis hiccup never takes the board down.
func buildView(r *http.Request, d deps.Deps) boardView {
	ctx := r.Context()
	items, healthy := d.Snapshot.Items()

	order, err := d.Store.ReadOrder(ctx)
	if err != nil {
		d.Logger.Warn("failed to read manual order, using schedule order", logger.Error(err))
		order = domain.ManualOrder{}
	}
	override, err := d.Store.ReadOverride(ctx)
	if err != nil {
		d.Logger.Warn("failed to read override, treating as disabled", logger.Error(err))
		override = domain.Override{}
	}
	settings, err := d.Store.ReadSettings(ctx)
	if err != nil {
		d.Logger.Warn("failed to read settings, using defaults", logger.Error(err))
		settings = domain.DefaultDisplaySettings()
	}

	now := d.Now()
	metrics.ResolveTotal.Inc()
	res := d.Resolver.Resolve(domain.Input{
		Items:    items,
		Order:    order,
		Override: override,
		Settings: settings,
		SourceOK: healthy,
	}, now)

	ongoing := dropHidden(res.OngoingAll, settings.HiddenIDs)
	ordered := dropHidden(res.Ordered, settings.HiddenIDs)

	var current *domain.Item
	if len(ongoing) > 0 {
		first := ongoing[0]
		current = &first
	}

	return boardView{
		Now:      now,
		Current:  current,
		Ongoing:  ongoing,
		Ordered:  ordered,
		Next:     domain.NextAfter(ordered, current, now),
		Meta:     res.Meta,
		Settings: settings,
	}
}

func dropHidden(items []domain.Item, hidden []string) []domain.Item {
	if len(hidden) == 0 {
		return items
	}
	hiddenSet := make(map[string]bool, len(hidden))
	for _, id := range hidden {
		hiddenSet[id] = true
	}
	kept := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if it.ID != "" && hiddenSet[it.ID] {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}
