package extraction

import (
	"context"

	"inbox-planner/internal/model"
	"inbox-planner/pkg/llmprovider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Extract classifies an email body and pulls out its action items.
	Extract(ctx context.Context, text string) (model.ExtractionResult, error)
	// ExtractMeeting summarises meeting notes and pulls out action items with priorities.
	ExtractMeeting(ctx context.Context, notes string) (model.ExtractionResult, error)
}

// Generator is the LLM backend. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Cache stores raw LLM answers keyed by prompt hash. Get reports a miss with ok=false.
type Cache interface {
	Get(ctx context.Context, key string) (value string, ok bool)
	Set(ctx context.Context, key, value string)
}
