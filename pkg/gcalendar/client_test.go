package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inbox-planner/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCreateEvent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		start := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:     "Title",
			Description: "Desc",
			StartTime:   start,
			EndTime:     start.Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}
		if event.Start != "2024-05-06T09:00:00Z" {
			t.Errorf("unexpected start: %s", event.Start)
		}
	})

	t.Run("api error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{CalendarID: "primary"})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})
}

func TestListEvents(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/test-fail/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
			gotQuery = r.URL.RawQuery
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"items": [
					{
						"id": "event-1",
						"summary": "Standup",
						"start": { "dateTime": "2024-05-06T09:00:00Z" },
						"end": { "dateTime": "2024-05-06T09:30:00Z" }
					},
					{
						"id": "event-2",
						"start": { "date": "2024-05-07" },
						"end": { "date": "2024-05-08" }
					}
				]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	now := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)
	events, err := client.ListUpcoming(context.Background(), "", now, 10)
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	for _, want := range []string{"singleEvents=true", "orderBy=startTime", "maxResults=10", "timeMin="} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}

	timed := events[0]
	if timed.Summary != "Standup" || timed.AllDay || timed.Start != "2024-05-06T09:00:00Z" {
		t.Errorf("unexpected timed event: %+v", timed)
	}
	if !timed.EndTime.Equal(time.Date(2024, 5, 6, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("unexpected end time: %v", timed.EndTime)
	}

	allDay := events[1]
	if !allDay.AllDay || allDay.Start != "2024-05-07" || allDay.Summary != "Untitled" {
		t.Errorf("unexpected all-day event: %+v", allDay)
	}

	_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "test-fail",
		TimeMin:    now,
		TimeMax:    now.Add(24 * time.Hour),
	})
	if err == nil {
		t.Fatalf("expected api error on test-fail")
	}
}
