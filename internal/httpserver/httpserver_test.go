package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inbox-planner/internal/pipeline"
	"inbox-planner/internal/schedule"
	"inbox-planner/pkg/log"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

var _ log.Logger = (*mockLogger)(nil)

type stubUseCase struct{}

func (stubUseCase) Run(ctx context.Context, in pipeline.RunInput) (pipeline.RunOutput, error) {
	return pipeline.RunOutput{RunID: "r"}, nil
}

func (stubUseCase) Plan(ctx context.Context, in pipeline.PlanInput) (pipeline.RunOutput, error) {
	return pipeline.RunOutput{RunID: "r"}, nil
}

func newServer(t *testing.T, uc pipeline.UseCase) *HTTPServer {
	t.Helper()
	srv, err := New(&mockLogger{}, Config{
		Logger:      &mockLogger{},
		Port:        8080,
		Mode:        "test",
		Environment: "production",
		PipelineUC:  uc,
		Window:      schedule.DefaultWindow(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func get(srv *HTTPServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, stubUseCase{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		if w := get(srv, http.MethodGet, path); w.Code != http.StatusOK {
			t.Errorf("%s: status %d", path, w.Code)
		}
	}

	w := get(srv, http.MethodGet, "/metrics")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Errorf("/metrics: status %d", w.Code)
	}
}

func TestPlanRoutesRegistered(t *testing.T) {
	srv := newServer(t, stubUseCase{})
	if w := get(srv, http.MethodPost, "/api/v1/plan/sync"); w.Code != http.StatusOK {
		t.Errorf("sync: status %d body %s", w.Code, w.Body.String())
	}
}

func TestNotReadyWithoutUseCase(t *testing.T) {
	srv := newServer(t, nil)
	if w := get(srv, http.MethodGet, "/ready"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("/ready: status %d", w.Code)
	}
	if w := get(srv, http.MethodPost, "/api/v1/plan/run"); w.Code != http.StatusNotFound {
		t.Errorf("plan route should be absent, got %d", w.Code)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no mode", Config{Port: 1}},
		{"no port", Config{Mode: "test"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(&mockLogger{}, tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}
