package gmail_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inbox-planner/pkg/gmail"
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

func enc(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func TestListRecent(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gmail/v1/users/me/messages":
			gotQuery = r.URL.Query().Get("q")
			w.Write([]byte(`{"messages":[{"id":"m1"},{"id":"m2"},{"id":"broken"}]}`))
		case "/gmail/v1/users/me/messages/m1":
			fmt.Fprintf(w, `{
				"id": "m1",
				"internalDate": "1714986000000",
				"payload": {
					"mimeType": "multipart/alternative",
					"headers": [
						{"name": "From", "value": "alice@example.com"},
						{"name": "Subject", "value": "Quarterly report"}
					],
					"parts": [
						{"mimeType": "text/html", "body": {"data": %q}},
						{"mimeType": "text/plain", "body": {"data": %q}}
					]
				}
			}`, enc("<p>html body</p>"), enc("Please send the report by Friday.\n"))
		case "/gmail/v1/users/me/messages/m2":
			fmt.Fprintf(w, `{
				"id": "m2",
				"payload": {
					"mimeType": "text/html",
					"headers": [{"name": "subject", "value": "Newsletter"}],
					"body": {"data": %q}
				}
			}`, enc("<div>Big <b>sale</b></div>"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gmail.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs, err := client.ListRecent(context.Background(), gmail.ListRequest{Limit: 5})
	if err != nil {
		t.Fatalf("failed to list messages: %v", err)
	}
	if gotQuery != gmail.DefaultQuery {
		t.Errorf("expected default query, got %q", gotQuery)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}

	first := msgs[0]
	if first.From != "alice@example.com" || first.Subject != "Quarterly report" {
		t.Errorf("unexpected headers: %+v", first)
	}
	if first.Body != "Please send the report by Friday." {
		t.Errorf("expected plain text body, got %q", first.Body)
	}
	if !first.ReceivedAt.Equal(time.UnixMilli(1714986000000)) {
		t.Errorf("unexpected received time: %v", first.ReceivedAt)
	}

	if msgs[1].Subject != "Newsletter" || !strings.Contains(msgs[1].Body, "sale") || strings.Contains(msgs[1].Body, "<b>") {
		t.Errorf("unexpected html fallback: %+v", msgs[1])
	}
}

func TestListRecentError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, _ := gmail.NewClientFromHTTP(context.Background(), tsClient)
	if _, err := client.ListRecent(context.Background(), gmail.ListRequest{Query: "is:unread"}); err == nil {
		t.Fatalf("expected list error")
	}
}
