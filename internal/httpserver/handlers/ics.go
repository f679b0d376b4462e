package handlers

import (
	"fmt"
	"net/http"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/hinatano/liveboard/internal/httpserver/deps"
	"github.com/hinatano/liveboard/internal/logger"
)

// ICS exports the schedule as an iCalendar feed so staff can subscribe
// from their own calendar apps. Items without a start time are skipped;
// a calendar entry needs at least one concrete instant.
func ICS(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := buildView(r, d)

		cal := ical.NewCalendar()
		cal.SetMethod(ical.MethodPublish)
		cal.SetProductId("-//liveboard//schedule//EN")

		stamp := v.Now.UTC()
		for i, it := range v.Ordered {
			if it.StartTime == nil {
				continue
			}
			uid := it.ID
			if uid == "" {
				uid = fmt.Sprintf("item-%d", i)
			}
			ev := cal.AddEvent(uid + "@liveboard")
			ev.SetDtStampTime(stamp)
			ev.SetSummary(it.Title)
			if it.Description != "" {
				ev.SetDescription(it.Description)
			}

			if it.AllDay {
				ev.SetAllDayStartAt(it.StartTime.UTC())
				ev.SetAllDayEndAt(it.StartTime.UTC().Add(24 * time.Hour))
				continue
			}

			ev.SetStartAt(it.StartTime.UTC())
			if it.EndTime != nil {
				ev.SetEndAt(it.EndTime.UTC())
			}
		}

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="schedule.ics"`)
		w.Header().Set("Cache-Control", "no-store")
		if err := cal.SerializeTo(w); err != nil {
			d.Logger.Debug("failed to write ics response", logger.Error(err))
		}
	}
}
