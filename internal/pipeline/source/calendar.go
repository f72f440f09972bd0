package source

import (
	"context"
	"fmt"
	"time"

	"inbox-planner/internal/model"
	"inbox-planner/pkg/gcalendar"
)

type calendarAPI interface {
	ListUpcoming(ctx context.Context, calID string, now time.Time, limit int64) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Calendar reads upcoming events and books proposed blocks on one calendar.
type Calendar struct {
	client     calendarAPI
	calendarID string
	timezone   string
	now        func() time.Time
}

func NewCalendar(client calendarAPI, calendarID, timezone string) *Calendar {
	return &Calendar{client: client, calendarID: calendarID, timezone: timezone, now: time.Now}
}

func (c *Calendar) FetchEvents(ctx context.Context, limit int) ([]model.CalendarEvent, error) {
	evs, err := c.client.ListUpcoming(ctx, c.calendarID, c.now(), int64(limit))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]model.CalendarEvent, 0, len(evs))
	for _, ev := range evs {
		out = append(out, model.CalendarEvent{ID: ev.ID, Title: ev.Summary, Start: ev.Start, End: ev.End})
	}
	return out, nil
}

// CreateBlock books b and returns the new event id.
func (c *Calendar) CreateBlock(ctx context.Context, b model.ProposedBlock) (string, error) {
	ev, err := c.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  c.calendarID,
		Summary:     b.Title,
		Description: fmt.Sprintf("Focus block for task %s", b.LinkedTaskID),
		StartTime:   b.Start,
		EndTime:     b.End,
		Timezone:    c.timezone,
	})
	if err != nil {
		return "", fmt.Errorf("create event: %w", err)
	}
	return ev.ID, nil
}
