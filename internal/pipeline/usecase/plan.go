package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"inbox-planner/internal/model"
	"inbox-planner/internal/pipeline"
	pkgLog "inbox-planner/pkg/log"
)

// Plan fetches items, events and optional meeting notes concurrently, then runs.
// Fetch failures degrade to empty inputs plus a diagnostic.
func (uc *implUseCase) Plan(ctx context.Context, in pipeline.PlanInput) (pipeline.RunOutput, error) {
	window := uc.opts.Window
	if in.Window != nil {
		window = *in.Window
	}
	if err := window.Validate(); err != nil {
		return pipeline.RunOutput{}, err
	}

	if pkgLog.RunIDFromContext(ctx) == "" {
		ctx = pkgLog.WithRunID(ctx, uuid.NewString())
	}

	itemLimit := uc.opts.ItemLimit
	if in.ItemLimit > 0 {
		itemLimit = in.ItemLimit
	}
	eventLimit := uc.opts.EventLimit
	if in.EventLimit > 0 {
		eventLimit = in.EventLimit
	}

	var (
		items             []model.RawItem
		events            []model.CalendarEvent
		notes             string
		itemErr, eventErr error
		notesErr          error
	)

	var g errgroup.Group
	g.Go(func() error {
		items, itemErr = uc.fetchItems(ctx, itemLimit)
		return nil
	})
	g.Go(func() error {
		events, eventErr = uc.fetchEvents(ctx, eventLimit)
		return nil
	})
	if in.MeetingDocID != "" {
		g.Go(func() error {
			notes, notesErr = uc.fetchNotes(ctx, in.MeetingDocID)
			return nil
		})
	}
	_ = g.Wait()

	var diags []string
	if itemErr != nil {
		uc.l.Errorf(ctx, "Plan: %v", itemErr)
		diags = append(diags, fmt.Sprintf("ERROR: Fetching emails - %v", itemErr))
	} else {
		diags = append(diags, fmt.Sprintf("Fetched %d emails", len(items)))
	}
	if eventErr != nil {
		uc.l.Errorf(ctx, "Plan: %v", eventErr)
		diags = append(diags, fmt.Sprintf("ERROR: Fetching calendar - %v", eventErr))
	} else {
		diags = append(diags, fmt.Sprintf("Fetched %d upcoming events.", len(events)))
	}
	if notesErr != nil {
		uc.l.Errorf(ctx, "Plan: %v", notesErr)
		diags = append(diags, fmt.Sprintf("ERROR: Fetching meeting notes %s - %v", in.MeetingDocID, notesErr))
	}

	out, err := uc.Run(ctx, pipeline.RunInput{
		Items:        items,
		Events:       events,
		MeetingNotes: notes,
		Window:       window,
		Now:          in.Now,
	})
	if err != nil {
		return pipeline.RunOutput{}, err
	}
	out.Diagnostics = append(diags, out.Diagnostics...)

	if in.Commit {
		uc.commit(ctx, &out)
	}
	return out, nil
}

func (uc *implUseCase) fetchItems(ctx context.Context, limit int) ([]model.RawItem, error) {
	if uc.items == nil {
		return nil, fmt.Errorf("%w: %w", pipeline.ErrFetch, pipeline.ErrSourceNotConfigured)
	}
	items, err := uc.items.FetchItems(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pipeline.ErrFetch, err)
	}
	return items, nil
}

func (uc *implUseCase) fetchEvents(ctx context.Context, limit int) ([]model.CalendarEvent, error) {
	if uc.calendar == nil {
		return nil, fmt.Errorf("%w: %w", pipeline.ErrCalendarFetch, pipeline.ErrSourceNotConfigured)
	}
	events, err := uc.calendar.FetchEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pipeline.ErrCalendarFetch, err)
	}
	return events, nil
}

func (uc *implUseCase) fetchNotes(ctx context.Context, docID string) (string, error) {
	if uc.docs == nil {
		return "", fmt.Errorf("%w: %w", pipeline.ErrDocFetch, pipeline.ErrSourceNotConfigured)
	}
	text, err := uc.docs.FetchDocText(ctx, docID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", pipeline.ErrDocFetch, err)
	}
	return text, nil
}

// commit books every proposal. A failed booking does not stop the others.
func (uc *implUseCase) commit(ctx context.Context, out *pipeline.RunOutput) {
	if uc.writer == nil {
		out.Diagnostics = append(out.Diagnostics, fmt.Sprintf("ERROR: Booking blocks - %v", fmt.Errorf("%w: %w", pipeline.ErrCommit, pipeline.ErrSourceNotConfigured)))
		return
	}

	for _, b := range out.Proposals {
		id, err := uc.writer.CreateBlock(ctx, b)
		if err != nil {
			err = fmt.Errorf("%w: %w", pipeline.ErrCommit, err)
			uc.l.Errorf(ctx, "commit: task=%s err=%v", b.LinkedTaskID, err)
			out.Diagnostics = append(out.Diagnostics, fmt.Sprintf("ERROR: Booking '%s' - %v", b.Title, err))
			continue
		}
		out.Committed++
		out.Diagnostics = append(out.Diagnostics, fmt.Sprintf("Booked '%s' at %s (event %s)", b.Title, b.Start.Format("2006-01-02 15:04"), id))
	}
	uc.l.Infof(ctx, "commit: booked %d of %d blocks", out.Committed, len(out.Proposals))
}
