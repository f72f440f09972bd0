package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"inbox-planner/internal/model"
	"inbox-planner/internal/pipeline"
	"inbox-planner/internal/schedule"
	"inbox-planner/internal/task"
	pkgLog "inbox-planner/pkg/log"
	"inbox-planner/pkg/metrics"
)

// Run extracts tasks from the items, consolidates them and proposes calendar blocks.
// Only an invalid window is returned as an error; every other failure becomes a diagnostic.
func (uc *implUseCase) Run(ctx context.Context, in pipeline.RunInput) (pipeline.RunOutput, error) {
	if err := in.Window.Validate(); err != nil {
		return pipeline.RunOutput{}, err
	}

	now := in.Now
	if now.IsZero() {
		now = uc.now()
	}
	loc := in.Window.Location
	if loc == nil {
		loc = time.UTC
	}

	runID := pkgLog.RunIDFromContext(ctx)
	if runID == "" {
		runID = uuid.NewString()
		ctx = pkgLog.WithRunID(ctx, runID)
	}
	out := pipeline.RunOutput{RunID: runID, Events: in.Events}

	uc.l.Infof(ctx, "Run: items=%d events=%d manual=%d now=%s", len(in.Items), len(in.Events), len(in.Tasks), now.Format(time.RFC3339))

	var tasks []model.Task
	for _, r := range uc.extractItems(ctx, in.Items, now) {
		out.Diagnostics = append(out.Diagnostics, r.diagnostics...)
		if r.summary != nil {
			out.Summaries = append(out.Summaries, *r.summary)
		}
		tasks = append(tasks, r.tasks...)
	}

	if strings.TrimSpace(in.MeetingNotes) != "" {
		r := uc.processNotes(ctx, in.MeetingNotes, now)
		out.Diagnostics = append(out.Diagnostics, r.diagnostics...)
		if r.summary != nil {
			out.Summaries = append(out.Summaries, *r.summary)
		}
		tasks = append(tasks, r.tasks...)
	}

	manual, lines := uc.manualTasks(in.Tasks, now)
	out.Diagnostics = append(out.Diagnostics, lines...)
	tasks = append(tasks, manual...)
	tasks = task.Dedup(tasks)

	tasks, lines = task.Prioritize(tasks, model.DateOf(now.In(loc)))
	out.Diagnostics = append(out.Diagnostics, lines...)
	if uc.opts.SortByPriority {
		tasks = task.SortByPriority(tasks)
	}
	out.Tasks = tasks

	for _, ev := range in.Events {
		if schedule.IsAllDay(ev) {
			out.Diagnostics = append(out.Diagnostics, fmt.Sprintf("Skipped all-day event '%s'", ev.Title))
		}
	}
	busy := schedule.BuildBusy(in.Events)

	alloc, err := schedule.AllocateWithReport(tasks, busy, in.Window, now)
	if err != nil {
		return out, err
	}
	out.Proposals = alloc.Blocks
	out.Omitted = alloc.Omitted

	titles := make(map[string]string, len(tasks))
	for _, t := range tasks {
		titles[t.ID] = t.Title
	}
	for _, id := range alloc.Omitted {
		out.Diagnostics = append(out.Diagnostics, fmt.Sprintf("No free slot for '%s' within %d day(s) - omitted", titles[id], in.Window.LookaheadDays))
	}
	out.Diagnostics = append(out.Diagnostics, fmt.Sprintf("Proposed %d time blocks.", len(out.Proposals)))

	metrics.AddProposals(len(out.Proposals))
	metrics.AddOmitted(len(out.Omitted))
	uc.l.Infof(ctx, "Run: tasks=%d proposals=%d omitted=%d", len(out.Tasks), len(out.Proposals), len(out.Omitted))

	return out, nil
}

// manualTasks fills the fields a caller may leave empty and resolves DueRaw
// when no DueDate is given. A phrase that does not resolve is reported and the
// task stays undated.
func (uc *implUseCase) manualTasks(in []model.Task, now time.Time) ([]model.Task, []string) {
	out := make([]model.Task, 0, len(in))
	var diags []string
	for _, t := range in {
		t.Title = strings.TrimSpace(t.Title)
		if t.Title == "" {
			continue
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.Source == "" {
			t.Source = model.SourceManual
		}
		if t.Status == "" {
			t.Status = model.StatusPending
		}
		if t.Confidence == 0 {
			t.Confidence = 1
		}
		if t.DueDate == nil && t.DueRaw != "" {
			t.DueDate = task.NormalizeDue(uc.parser, t.DueRaw, now)
			if t.DueDate == nil {
				diags = append(diags, fmt.Sprintf("Unresolved due date '%s' for '%s' - left unset", t.DueRaw, t.Title))
			}
		}
		out = append(out, t)
	}
	return out, diags
}
