package source

import (
	"context"
	"fmt"

	"inbox-planner/internal/model"
	"inbox-planner/pkg/gmail"
)

type messageLister interface {
	ListRecent(ctx context.Context, req gmail.ListRequest) ([]gmail.Message, error)
}

// Mailbox reads recent emails as raw items.
type Mailbox struct {
	client messageLister
	query  string
}

func NewMailbox(client messageLister, query string) *Mailbox {
	if query == "" {
		query = gmail.DefaultQuery
	}
	return &Mailbox{client: client, query: query}
}

func (m *Mailbox) FetchItems(ctx context.Context, limit int) ([]model.RawItem, error) {
	msgs, err := m.client.ListRecent(ctx, gmail.ListRequest{Query: m.query, Limit: int64(limit)})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	items := make([]model.RawItem, 0, len(msgs))
	for _, msg := range msgs {
		items = append(items, model.RawItem{
			ID:         msg.ID,
			Subject:    msg.Subject,
			Body:       msg.Body,
			From:       msg.From,
			ReceivedAt: msg.ReceivedAt,
		})
	}
	return items, nil
}
