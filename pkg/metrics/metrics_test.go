package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(ItemsProcessed.WithLabelValues(StatusSkipped))
	IncrementItemProcessed(StatusSkipped)
	if got := testutil.ToFloat64(ItemsProcessed.WithLabelValues(StatusSkipped)); got != before+1 {
		t.Errorf("items skipped = %v, want %v", got, before+1)
	}

	beforeTasks := testutil.ToFloat64(TasksExtracted.WithLabelValues("meeting"))
	AddTasksExtracted("meeting", 3)
	AddTasksExtracted("meeting", 0)
	if got := testutil.ToFloat64(TasksExtracted.WithLabelValues("meeting")); got != beforeTasks+3 {
		t.Errorf("tasks = %v, want %v", got, beforeTasks+3)
	}

	beforeOmitted := testutil.ToFloat64(TasksOmitted)
	AddOmitted(-1)
	AddOmitted(2)
	if got := testutil.ToFloat64(TasksOmitted); got != beforeOmitted+2 {
		t.Errorf("omitted = %v, want %v", got, beforeOmitted+2)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordExtractionLatency("email", errors.New("boom"), 250*time.Millisecond)
	AddProposals(1)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"planner_extraction_latency_ms", "planner_proposals_emitted_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
