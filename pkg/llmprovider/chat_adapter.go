package llmprovider

import (
	"context"
	"errors"

	"inbox-planner/pkg/openaicompat"
	"inbox-planner/pkg/retry"
)

const (
	providerQwen     = "qwen"
	providerAlibaba  = "alibaba"
	providerDeepSeek = "deepseek"
)

// ChatAdapter adapts an OpenAI-compatible chat client to the Provider interface.
type ChatAdapter struct {
	name   string
	client openaicompat.IClient
}

func NewChatAdapter(name string, client openaicompat.IClient) *ChatAdapter {
	return &ChatAdapter{name: name, client: client}
}

func (a *ChatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &openaicompat.Request{
		System:      req.SystemInstruction,
		Messages:    make([]openaicompat.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	}
	for i, m := range req.Messages {
		role := m.Role
		if role == "model" {
			role = "assistant"
		}
		chatReq.Messages[i] = openaicompat.Message{Role: role, Content: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, chatReq)
	if err != nil {
		perr := &ProviderError{Provider: a.name, Err: err}
		var apiErr *openaicompat.APIError
		if errors.As(err, &apiErr) && !apiErr.Retryable() {
			return nil, retry.Permanent(perr)
		}
		return nil, perr
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *ChatAdapter) Name() string {
	return a.name
}

func (a *ChatAdapter) Model() string {
	return a.client.Model()
}
