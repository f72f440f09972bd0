// Package gdocs reads plain text out of Google Docs.
package gdocs

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
)

var docLinkRe = regexp.MustCompile(`https://docs\.google\.com/document/d/([a-zA-Z0-9_-]+)`)

// Client wraps the Google Docs API service.
type Client struct {
	service *docs.Service
}

// NewClient creates a Docs client from client options, typically from gauth.ClientOption.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create docs service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Docs client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return NewClient(ctx, option.WithHTTPClient(httpClient))
}

// DocumentText returns the concatenated paragraph text of a document.
func (c *Client) DocumentText(ctx context.Context, docID string) (string, error) {
	doc, err := c.service.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get document %s: %w", docID, err)
	}
	if doc.Body == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, el := range doc.Body.Content {
		if el.Paragraph == nil {
			continue
		}
		for _, pe := range el.Paragraph.Elements {
			if pe.TextRun != nil {
				sb.WriteString(pe.TextRun.Content)
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// FindDocIDs returns the ids of all Google Docs linked from text, in order of appearance.
func FindDocIDs(text string) []string {
	matches := docLinkRe.FindAllStringSubmatch(text, -1)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}
