package pipeline

import (
	"context"

	"inbox-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Run plans over already-fetched items and events.
	Run(ctx context.Context, input RunInput) (RunOutput, error)
	// Plan fetches from the configured sources, then runs.
	Plan(ctx context.Context, input PlanInput) (RunOutput, error)
}

// ItemSource delivers raw items such as emails.
type ItemSource interface {
	FetchItems(ctx context.Context, limit int) ([]model.RawItem, error)
}

// Extractor turns free text into an ExtractionResult.
type Extractor interface {
	Extract(ctx context.Context, text string) (model.ExtractionResult, error)
	ExtractMeeting(ctx context.Context, notes string) (model.ExtractionResult, error)
}

// CalendarSource delivers upcoming calendar events.
type CalendarSource interface {
	FetchEvents(ctx context.Context, limit int) ([]model.CalendarEvent, error)
}

// DocSource returns the plain text of a shared document.
type DocSource interface {
	FetchDocText(ctx context.Context, docID string) (string, error)
}

// CalendarWriter books a proposed block on the calendar.
type CalendarWriter interface {
	CreateBlock(ctx context.Context, block model.ProposedBlock) (string, error)
}
