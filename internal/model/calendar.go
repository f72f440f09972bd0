package model

import "time"

// CalendarEvent is an event as delivered by the calendar API. Start and End are
// ISO-8601 strings; date-only values denote all-day events.
type CalendarEvent struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// BusyInterval is a half-open UTC range [Start, End) during which nothing may be placed.
type BusyInterval struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// Overlaps reports strict intersection with [start, end).
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}

// ProposedBlock is a suggested calendar slot for a task.
type ProposedBlock struct {
	Start        time.Time `json:"start" yaml:"start"`
	End          time.Time `json:"end" yaml:"end"`
	Title        string    `json:"title" yaml:"title"`
	LinkedTaskID string    `json:"linked_task_id" yaml:"linked_task_id"`
}
