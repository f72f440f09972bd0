package log

import (
	"context"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		arg    []any
		wantOK bool
		msg    string
	}{
		{name: "message with pairs", arg: []any{"done", "provider", "gemini", "tokens", 12}, wantOK: true, msg: "done"},
		{name: "single message", arg: []any{"done"}, wantOK: false},
		{name: "odd tail", arg: []any{"done", "provider"}, wantOK: false},
		{name: "non string key", arg: []any{"done", 1, "x"}, wantOK: false},
		{name: "non string message", arg: []any{42, "k", "v"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, _, ok := split(tt.arg)
			if ok != tt.wantOK {
				t.Fatalf("split() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && msg != tt.msg {
				t.Errorf("split() msg = %q, want %q", msg, tt.msg)
			}
		})
	}
}

func TestRunIDContext(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-1")
	if got := RunIDFromContext(ctx); got != "run-1" {
		t.Errorf("RunIDFromContext() = %q, want run-1", got)
	}
	if got := RunIDFromContext(context.Background()); got != "" {
		t.Errorf("RunIDFromContext() on empty ctx = %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDebug, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "bogus", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		l := Init(cfg)
		l.Info(WithRunID(context.Background(), "r"), "hello", "k", "v")
		l.Debugf(context.Background(), "value=%d", 1)
	}
	NewNop().Warn(context.Background(), "quiet")
}
