package source

import (
	"context"
	"fmt"
)

type documentReader interface {
	DocumentText(ctx context.Context, docID string) (string, error)
}

// Docs reads shared notes documents.
type Docs struct {
	client documentReader
}

func NewDocs(client documentReader) *Docs {
	return &Docs{client: client}
}

func (d *Docs) FetchDocText(ctx context.Context, docID string) (string, error) {
	text, err := d.client.DocumentText(ctx, docID)
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", docID, err)
	}
	return text, nil
}
