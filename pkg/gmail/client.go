package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	gm "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const me = "me"

var tagRe = regexp.MustCompile(`(?s)<[^>]*>`)

// Client wraps the Gmail API service.
type Client struct {
	service *gm.Service
}

// NewClient creates a Gmail client from client options, typically from gauth.ClientOption.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := gm.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return NewClient(ctx, option.WithHTTPClient(httpClient))
}

// ListRecent returns up to Limit messages matching Query, newest first.
// Messages that fail to load individually are skipped.
func (c *Client) ListRecent(ctx context.Context, req ListRequest) ([]Message, error) {
	query := req.Query
	if query == "" {
		query = DefaultQuery
	}

	call := c.service.Users.Messages.List(me).Q(query).Context(ctx)
	if req.Limit > 0 {
		call = call.MaxResults(req.Limit)
	}
	list, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	msgs := make([]Message, 0, len(list.Messages))
	for _, ref := range list.Messages {
		full, err := c.service.Users.Messages.Get(me, ref.Id).Format("full").Context(ctx).Do()
		if err != nil {
			if ctx.Err() != nil {
				return msgs, ctx.Err()
			}
			continue
		}
		msgs = append(msgs, toMessage(full))
	}
	return msgs, nil
}

func toMessage(m *gm.Message) Message {
	msg := Message{ID: m.Id}
	if m.InternalDate > 0 {
		msg.ReceivedAt = time.UnixMilli(m.InternalDate).UTC()
	}
	if m.Payload == nil {
		return msg
	}

	for _, h := range m.Payload.Headers {
		switch strings.ToLower(h.Name) {
		case "from":
			msg.From = h.Value
		case "to":
			msg.To = h.Value
		case "subject":
			msg.Subject = h.Value
		}
	}

	plain, html := findBodies(m.Payload)
	switch {
	case plain != "":
		msg.Body = strings.TrimSpace(plain)
	case html != "":
		msg.Body = strings.TrimSpace(tagRe.ReplaceAllString(html, " "))
	}
	return msg
}

// findBodies walks the MIME tree and returns the first text/plain and text/html bodies.
func findBodies(p *gm.MessagePart) (plain, html string) {
	if p == nil {
		return "", ""
	}
	if p.Body != nil && p.Body.Data != "" {
		switch {
		case strings.HasPrefix(p.MimeType, "text/plain"):
			plain = decode(p.Body.Data)
		case strings.HasPrefix(p.MimeType, "text/html"):
			html = decode(p.Body.Data)
		}
	}
	for _, part := range p.Parts {
		if plain != "" {
			break
		}
		pp, ph := findBodies(part)
		if plain == "" {
			plain = pp
		}
		if html == "" {
			html = ph
		}
	}
	return plain, html
}

func decode(data string) string {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return ""
	}
	return strings.ToValidUTF8(string(b), "")
}
