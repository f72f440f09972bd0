package llmprovider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"inbox-planner/pkg/gemini"
	"inbox-planner/pkg/retry"
)

func TestGeminiAdapter(t *testing.T) {
	status := http.StatusOK
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"ok\":true}"}]}}],
				"usageMetadata":{"promptTokenCount":4,"candidatesTokenCount":2,"totalTokenCount":6}}`))
		}
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "k", Model: "m", APIURL: ts.URL})
	if err != nil {
		t.Fatal(err)
	}
	adapter := NewGeminiAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), &Request{
		SystemInstruction: "json only",
		Messages:          []Message{{Role: "user", Text: "hi"}},
		JSONMode:          true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != `{"ok":true}` || resp.ProviderName != "gemini" || resp.ModelName != "m" || resp.Usage.TotalTokens != 6 {
		t.Errorf("unexpected response: %+v", resp)
	}

	status = http.StatusBadRequest
	_, err = adapter.GenerateContent(context.Background(), UserPrompt("hi"))
	if !retry.IsPermanent(err) {
		t.Errorf("expected permanent error for 400, got %v", err)
	}
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "gemini" {
		t.Errorf("expected ProviderError, got %v", err)
	}

	status = http.StatusServiceUnavailable
	_, err = adapter.GenerateContent(context.Background(), UserPrompt("hi"))
	if err == nil || retry.IsPermanent(err) {
		t.Errorf("expected retryable error for 503, got %v", err)
	}
}
