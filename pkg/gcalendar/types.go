package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/London"
}

// Event is a simplified representation of a Google Calendar event.
// Start and End keep the raw API value: RFC 3339 for timed events, a date for all-day ones.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Start       string
	End         string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Location    string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
