package task

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inbox-planner/internal/model"
	"inbox-planner/pkg/datemath"
)

func date(t *testing.T, s string) *model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func TestDedupFirstSeenWins(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "Send report", DueDate: date(t, "2025-01-10")},
		{ID: "2", Title: "send report ", DueDate: date(t, "2025-01-10")},
	}

	got := Dedup(tasks)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestDedupKeepsDistinctKeys(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "Send report", DueDate: date(t, "2025-01-10")},
		{ID: "2", Title: "Send report", DueDate: date(t, "2025-01-11")},
		{ID: "3", Title: "Send report"},
		{ID: "4", Title: "SEND REPORT"},
		{ID: "5", Title: "Send the report"},
	}

	got := Dedup(tasks)
	ids := make([]string, 0, len(got))
	for _, tk := range got {
		ids = append(ids, tk.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "5"}, ids)
}

func TestDedupIdempotent(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Title: "Pay invoice"},
		{ID: "b", Title: " pay invoice"},
		{ID: "c", Title: "Review PR", DueDate: date(t, "2025-02-01")},
		{ID: "d", Title: "review pr", DueDate: date(t, "2025-02-01")},
		{ID: "e", Title: "Book flights", DueDate: date(t, "2025-02-01")},
	}

	once := Dedup(tasks)
	twice := Dedup(once)
	assert.Equal(t, once, twice)
	assert.LessOrEqual(t, len(once), len(tasks))

	keys := map[Key]bool{}
	for _, tk := range once {
		k := KeyOf(tk)
		assert.False(t, keys[k], "duplicate key %v", k)
		keys[k] = true
	}
}

func TestDedupEmpty(t *testing.T) {
	assert.Empty(t, Dedup(nil))
}

func TestAssignPriority(t *testing.T) {
	today := *date(t, "2025-01-10")

	tests := []struct {
		name string
		task model.Task
		want model.Priority
	}{
		{"overdue", model.Task{Title: "x", DueDate: date(t, "2025-01-01")}, model.PriorityHigh},
		{"due today", model.Task{Title: "x", DueDate: date(t, "2025-01-10")}, model.PriorityHigh},
		{"due in two days", model.Task{Title: "x", DueDate: date(t, "2025-01-12")}, model.PriorityHigh},
		{"due in three days", model.Task{Title: "x", DueDate: date(t, "2025-01-13")}, model.PriorityMed},
		{"far out review keeps date rule", model.Task{Title: "Review deck", DueDate: date(t, "2025-03-01")}, model.PriorityMed},
		{"review keyword", model.Task{Title: "Please REVIEW the draft"}, model.PriorityMed},
		{"check keyword", model.Task{Title: "check logs"}, model.PriorityMed},
		{"look at keyword", model.Task{Title: "Look at the budget"}, model.PriorityMed},
		{"nothing", model.Task{Title: "Buy milk"}, model.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssignPriority(tt.task, today))
		})
	}
}

func TestAssignPriorityMonotonic(t *testing.T) {
	today := *date(t, "2025-01-10")
	prev := -1
	// Moving the due date later never raises the priority.
	for offset := -5; offset <= 30; offset++ {
		d := today.AddDays(offset)
		p := AssignPriority(model.Task{Title: "Ship it", DueDate: &d}, today)
		if prev >= 0 {
			assert.GreaterOrEqual(t, p.Rank(), prev, "offset %d", offset)
		}
		prev = p.Rank()
	}
}

func TestPrioritizeReturnsCopies(t *testing.T) {
	today := *date(t, "2025-01-10")
	in := []model.Task{
		{ID: "1", Title: "Buy milk"},
		{ID: "2", Title: "File taxes", DueDate: date(t, "2025-01-10")},
	}

	out, lines := Prioritize(in, today)
	require.Len(t, out, 2)
	assert.Equal(t, model.PriorityLow, out[0].Priority)
	assert.Equal(t, model.PriorityHigh, out[1].Priority)
	assert.Empty(t, in[0].Priority)
	assert.Equal(t, []string{
		"Task 'Buy milk' -> priority LOW",
		"Task 'File taxes' -> priority HIGH",
	}, lines)
}

func TestSortByPriorityStable(t *testing.T) {
	in := []model.Task{
		{ID: "1", Priority: model.PriorityLow},
		{ID: "2", Priority: model.PriorityHigh},
		{ID: "3", Priority: model.PriorityMed},
		{ID: "4", Priority: model.PriorityHigh},
		{ID: "5", Priority: model.PriorityLow},
	}

	got := SortByPriority(in)
	var ids []string
	for _, tk := range got {
		ids = append(ids, tk.ID)
	}
	assert.Equal(t, []string{"2", "4", "3", "1", "5"}, ids)
	assert.Equal(t, "1", in[0].ID)
}

func TestNormalizeDue(t *testing.T) {
	p, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	now := time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC) // Wednesday

	assert.Equal(t, date(t, "2025-01-10"), NormalizeDue(p, "by Friday", now))
	assert.Equal(t, date(t, "2025-01-13"), NormalizeDue(p, "within 5 days", now))
	assert.Nil(t, NormalizeDue(p, "when you get a chance", now))
	assert.Nil(t, NormalizeDue(p, "", now))
	assert.Nil(t, NormalizeDue(nil, "tomorrow", now))
}

func TestBuild(t *testing.T) {
	p, _ := datemath.NewParser("UTC")
	now := time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC)
	in := BuildInput{ID: "m1_0", Source: model.SourceEmail, Now: now}

	t.Run("phrase wins over model date", func(t *testing.T) {
		got := Build(p, in, model.ExtractedTask{Title: " Send deck ", DueRaw: "tomorrow", DueDate: "2025-02-01", Confidence: 0.9})
		assert.Equal(t, "Send deck", got.Title)
		assert.Equal(t, date(t, "2025-01-09"), got.DueDate)
		assert.Equal(t, model.StatusPending, got.Status)
		assert.Equal(t, model.SourceEmail, got.Source)
		assert.Equal(t, "m1_0", got.ID)
	})

	t.Run("malformed due date falls back to phrase", func(t *testing.T) {
		got := Build(p, in, model.ExtractedTask{Title: "Send deck", DueRaw: "tomorrow", DueDate: "next-ish"})
		assert.Equal(t, date(t, "2025-01-09"), got.DueDate)
	})

	t.Run("model date used when phrase does not resolve", func(t *testing.T) {
		got := Build(p, in, model.ExtractedTask{Title: "Plant seeds", DueRaw: "first day of spring", DueDate: "2025-03-20"})
		assert.Equal(t, date(t, "2025-03-20"), got.DueDate)
		assert.Equal(t, "first day of spring", got.DueRaw)
	})

	t.Run("model date without phrase is ignored", func(t *testing.T) {
		got := Build(p, in, model.ExtractedTask{Title: "Send deck", DueDate: "2025-01-08"})
		assert.Nil(t, got.DueDate)
	})

	t.Run("unresolvable phrase leaves due unset", func(t *testing.T) {
		got := Build(p, in, model.ExtractedTask{Title: "Send deck", DueRaw: "someday"})
		assert.Nil(t, got.DueDate)
		assert.Equal(t, "someday", got.DueRaw)
	})

	t.Run("confidence is clamped", func(t *testing.T) {
		assert.Equal(t, 1.0, Build(p, in, model.ExtractedTask{Title: "a", Confidence: 3}).Confidence)
		assert.Equal(t, 0.0, Build(p, in, model.ExtractedTask{Title: "a", Confidence: -1}).Confidence)
		assert.Equal(t, 0.0, Build(p, in, model.ExtractedTask{Title: "a", Confidence: math.NaN()}).Confidence)
	})
}

func TestManualDue(t *testing.T) {
	tests := []struct {
		name     string
		dueDate  string
		dueRaw   string
		wantDate *model.Date
		wantRaw  string
	}{
		{"no date", "", " by Friday ", nil, "by Friday"},
		{"valid date", "2025-02-01", "early Feb", date(t, "2025-02-01"), "early Feb"},
		{"malformed date becomes phrase", "next-ish", "", nil, "next-ish"},
		{"malformed date keeps existing phrase", "05/08", "tomorrow", nil, "tomorrow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDate, gotRaw := ManualDue(tt.dueDate, tt.dueRaw)
			assert.Equal(t, tt.wantDate, gotDate)
			assert.Equal(t, tt.wantRaw, gotRaw)
		})
	}
}
