package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	untitled          = "Untitled"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClient creates a Calendar client from client options, typically from gauth.ClientOption.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return NewClient(ctx, option.WithHTTPClient(httpClient))
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		Start:       req.StartTime.Format(time.RFC3339),
		End:         req.EndTime.Format(time.RFC3339),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// ListEvents returns single (expanded) events between TimeMin and TimeMax ordered by start.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, toEvent(item))
	}
	return events, nil
}

// ListUpcoming returns at most limit events starting from now.
func (c *Client) ListUpcoming(ctx context.Context, calID string, now time.Time, limit int64) ([]Event, error) {
	return c.ListEvents(ctx, ListEventsRequest{
		CalendarID: calID,
		TimeMin:    now,
		MaxResults: limit,
	})
}

func toEvent(item *calendar.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		Location:    item.Location,
	}
	if ev.Summary == "" {
		ev.Summary = untitled
	}

	ev.Start, ev.StartTime, ev.AllDay = eventTime(item.Start)
	var endAllDay bool
	ev.End, ev.EndTime, endAllDay = eventTime(item.End)
	ev.AllDay = ev.AllDay || endAllDay
	return ev
}

// eventTime returns the raw value, the parsed instant (zero for all-day) and whether it is date-only.
func eventTime(dt *calendar.EventDateTime) (string, time.Time, bool) {
	if dt == nil {
		return "", time.Time{}, false
	}
	if dt.DateTime != "" {
		t, _ := time.Parse(time.RFC3339, dt.DateTime)
		return dt.DateTime, t, false
	}
	return dt.Date, time.Time{}, dt.Date != ""
}

func calendarID(id string) string {
	if id == "" {
		return defaultCalendarID
	}
	return id
}
