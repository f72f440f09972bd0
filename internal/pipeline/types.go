package pipeline

import (
	"time"

	"inbox-planner/internal/model"
	"inbox-planner/internal/schedule"
)

// --- UseCase Inputs ---

type RunInput struct {
	Items  []model.RawItem
	Events []model.CalendarEvent
	// Tasks are added as-is before deduplication.
	Tasks []model.Task
	// MeetingNotes is an optional standalone notes document.
	MeetingNotes string
	Window       schedule.Window
	// Now defaults to the wall clock.
	Now time.Time
}

type PlanInput struct {
	// ItemLimit and EventLimit override the configured fetch sizes when positive.
	ItemLimit  int
	EventLimit int
	// MeetingDocID names a notes document to process alongside the inbox.
	MeetingDocID string
	// Window overrides the configured scheduling window.
	Window *schedule.Window
	Commit bool
	Now    time.Time
}

// --- UseCase Outputs ---

type RunOutput struct {
	RunID       string
	Tasks       []model.Task
	Proposals   []model.ProposedBlock
	Omitted     []string
	Diagnostics []string
	Summaries   []model.ItemSummary
	Events      []model.CalendarEvent
	// Committed counts proposals written to the calendar.
	Committed int
}

// --- Options ---

const (
	DefaultWorkers     = 4
	DefaultItemTimeout = 90 * time.Second
	DefaultItemLimit   = 5
	DefaultEventLimit  = 10
)

// Options tunes the use case. Zero values take the defaults above.
type Options struct {
	Workers        int
	ItemTimeout    time.Duration
	ItemLimit      int
	EventLimit     int
	SortByPriority bool
	Window         schedule.Window
}
