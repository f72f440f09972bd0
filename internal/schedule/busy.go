package schedule

import (
	"sort"
	"strings"
	"time"

	"inbox-planner/internal/model"
)

// BuildBusy converts timed calendar events into UTC busy intervals sorted by start.
// All-day events, unparseable timestamps and empty or inverted ranges are dropped.
// Overlapping intervals are not merged.
func BuildBusy(events []model.CalendarEvent) []model.BusyInterval {
	busy := make([]model.BusyInterval, 0, len(events))
	for _, ev := range events {
		if !isTimed(ev.Start) || !isTimed(ev.End) {
			continue
		}
		start, err := parseInstant(ev.Start)
		if err != nil {
			continue
		}
		end, err := parseInstant(ev.End)
		if err != nil || !end.After(start) {
			continue
		}
		busy = append(busy, model.BusyInterval{Start: start.UTC(), End: end.UTC()})
	}

	sort.SliceStable(busy, func(i, j int) bool {
		return busy[i].Start.Before(busy[j].Start)
	})
	return busy
}

// IsAllDay reports whether a calendar event carries date-only bounds.
func IsAllDay(ev model.CalendarEvent) bool {
	return !isTimed(ev.Start) || !isTimed(ev.End)
}

func isTimed(s string) bool {
	return strings.Contains(s, "T")
}

func parseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	// Offset-less timestamps are taken as UTC.
	return time.Parse("2006-01-02T15:04:05", s)
}
