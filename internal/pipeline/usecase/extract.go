package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"inbox-planner/internal/model"
	"inbox-planner/internal/pipeline"
	"inbox-planner/internal/task"
	"inbox-planner/pkg/gdocs"
	"inbox-planner/pkg/metrics"
)

// itemResult is what one worker produces for one item.
type itemResult struct {
	tasks       []model.Task
	summary     *model.ItemSummary
	diagnostics []string
}

// extractItems fans the items out over a bounded pool. Each worker writes only its own slot.
func (uc *implUseCase) extractItems(ctx context.Context, items []model.RawItem, now time.Time) []itemResult {
	results := make([]itemResult, len(items))

	var g errgroup.Group
	g.SetLimit(uc.opts.Workers)
	for i, item := range items {
		g.Go(func() error {
			results[i] = uc.processItem(ctx, item, now)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (uc *implUseCase) processItem(ctx context.Context, item model.RawItem, now time.Time) itemResult {
	ctx, cancel := context.WithTimeout(ctx, uc.opts.ItemTimeout)
	defer cancel()

	var r itemResult
	subject := item.Subject
	if strings.TrimSpace(subject) == "" {
		subject = "(no subject)"
	}

	if ids := gdocs.FindDocIDs(item.Body); len(ids) > 0 && uc.docs != nil {
		r.diagnostics = append(r.diagnostics, fmt.Sprintf("Detected meeting notes in '%s' - using Google Doc %s", subject, ids[0]))
		mr, err := uc.processMeetingDoc(ctx, item, subject, ids[0], now)
		if err == nil {
			mr.diagnostics = append(r.diagnostics, mr.diagnostics...)
			return mr
		}
		uc.l.Warnf(ctx, "processItem: meeting doc %s for item %s: %v", ids[0], item.ID, err)
		r.diagnostics = append(r.diagnostics, fmt.Sprintf("ERROR: Processing '%s' - %v", subject, err))
	}

	res, err := uc.extractor.Extract(ctx, fmt.Sprintf("Subject: %s\n\n%s", item.Subject, item.Body))
	if err != nil {
		err = fmt.Errorf("%w: %w", pipeline.ErrExtraction, err)
		uc.l.Errorf(ctx, "processItem: item=%s err=%v", item.ID, err)
		r.diagnostics = append(r.diagnostics, fmt.Sprintf("ERROR: Processing '%s' - %v", subject, err))
		metrics.IncrementItemProcessed(metrics.StatusFailed)
		return r
	}

	if res.Category == model.CategoryPromo {
		r.diagnostics = append(r.diagnostics, fmt.Sprintf("Ignored PROMO email: '%s'", subject))
		metrics.IncrementItemProcessed(metrics.StatusSkipped)
		return r
	}

	r.summary = &model.ItemSummary{ItemID: item.ID, Subject: item.Subject, Category: res.Category, Text: res.Summary}
	for idx, et := range res.Tasks {
		t := task.Build(uc.parser, task.BuildInput{
			ID:     fmt.Sprintf("%s_%d", item.ID, idx),
			Source: model.SourceEmail,
			Now:    now,
		}, et)
		if t.Title != "" {
			r.tasks = append(r.tasks, t)
		}
	}
	r.diagnostics = append(r.diagnostics, fmt.Sprintf("Processed '%s' - %d tasks", subject, len(r.tasks)))

	metrics.IncrementItemProcessed(metrics.StatusSuccess)
	metrics.AddTasksExtracted(string(model.SourceEmail), len(r.tasks))
	return r
}

// processMeetingDoc replaces email extraction for items that link a notes document.
func (uc *implUseCase) processMeetingDoc(ctx context.Context, item model.RawItem, subject, docID string, now time.Time) (itemResult, error) {
	text, err := uc.docs.FetchDocText(ctx, docID)
	if err != nil {
		return itemResult{}, fmt.Errorf("%w: %w", pipeline.ErrDocFetch, err)
	}
	if strings.TrimSpace(text) == "" {
		return itemResult{}, fmt.Errorf("%w: document %s is empty", pipeline.ErrDocFetch, docID)
	}

	res, err := uc.extractor.ExtractMeeting(ctx, text)
	if err != nil {
		return itemResult{}, fmt.Errorf("%w: %w", pipeline.ErrExtraction, err)
	}

	r := itemResult{
		summary: &model.ItemSummary{ItemID: item.ID, Subject: item.Subject, Category: model.CategoryMeeting, Text: res.Summary},
		tasks:   uc.meetingTasks(res, item.ID+"_mt_", now),
	}
	r.diagnostics = append(r.diagnostics, fmt.Sprintf("Processed meeting notes in '%s' - %d tasks", subject, len(r.tasks)))

	metrics.IncrementItemProcessed(metrics.StatusSuccess)
	metrics.AddTasksExtracted(string(model.SourceMeeting), len(r.tasks))
	return r, nil
}

// processNotes handles a standalone notes document passed to the run.
func (uc *implUseCase) processNotes(ctx context.Context, notes string, now time.Time) itemResult {
	ctx, cancel := context.WithTimeout(ctx, uc.opts.ItemTimeout)
	defer cancel()

	res, err := uc.extractor.ExtractMeeting(ctx, notes)
	if err != nil {
		err = fmt.Errorf("%w: %w", pipeline.ErrExtraction, err)
		uc.l.Errorf(ctx, "processNotes: %v", err)
		return itemResult{diagnostics: []string{fmt.Sprintf("ERROR: Processing meeting notes - %v", err)}}
	}

	r := itemResult{
		summary: &model.ItemSummary{ItemID: "meeting", Subject: "Meeting notes", Category: model.CategoryMeeting, Text: res.Summary},
		tasks:   uc.meetingTasks(res, "meeting_", now),
	}
	r.diagnostics = []string{fmt.Sprintf("Processed meeting notes - %d tasks added", len(r.tasks))}
	metrics.AddTasksExtracted(string(model.SourceMeeting), len(r.tasks))
	return r
}

// meetingTasks builds tasks whose ids are idPrefix followed by the action item index.
func (uc *implUseCase) meetingTasks(res model.ExtractionResult, idPrefix string, now time.Time) []model.Task {
	var tasks []model.Task
	for idx, et := range res.Tasks {
		t := task.Build(uc.parser, task.BuildInput{
			ID:     fmt.Sprintf("%s%d", idPrefix, idx),
			Source: model.SourceMeeting,
			Now:    now,
		}, et)
		if t.Title != "" {
			tasks = append(tasks, t)
		}
	}
	return tasks
}
