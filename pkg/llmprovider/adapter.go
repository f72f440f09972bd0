package llmprovider

import (
	"context"
	"errors"

	"inbox-planner/pkg/gemini"
	"inbox-planner/pkg/retry"
)

const providerGemini = "gemini"

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface. Client errors the API will
// not accept on a second try are marked permanent.
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          make([]gemini.Content, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.JSONMode,
	}
	for i, m := range req.Messages {
		geminiReq.Messages[i] = gemini.Content{Role: m.Role, Parts: []gemini.Part{{Text: m.Text}}}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		perr := &ProviderError{Provider: providerGemini, Err: err}
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) && !apiErr.Retryable() {
			return nil, retry.Permanent(perr)
		}
		return nil, perr
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: providerGemini,
		ModelName:    a.client.Model(),
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return providerGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
