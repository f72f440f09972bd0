package task

import (
	"strings"
	"time"

	"inbox-planner/internal/model"
	"inbox-planner/pkg/datemath"
)

// NormalizeDue resolves a free-text due phrase to a calendar date in the parser's
// timezone. Phrases without a resolvable date yield nil.
func NormalizeDue(p *datemath.Parser, phrase string, now time.Time) *model.Date {
	if p == nil || strings.TrimSpace(phrase) == "" {
		return nil
	}
	t, ok := p.ResolveDue(phrase, now)
	if !ok {
		return nil
	}
	d := model.DateOf(t.In(p.Location()))
	return &d
}

// BuildInput carries what Build needs besides the extracted candidate.
type BuildInput struct {
	ID     string
	Source model.Source
	Now    time.Time
}

// Build turns an extracted candidate into a pending Task. The DueRaw phrase is
// normalized first; a well-formed DueDate is used only when a phrase is present
// but does not resolve.
func Build(p *datemath.Parser, in BuildInput, et model.ExtractedTask) model.Task {
	t := model.Task{
		ID:         in.ID,
		Title:      strings.TrimSpace(et.Title),
		Source:     in.Source,
		DueRaw:     strings.TrimSpace(et.DueRaw),
		Status:     model.StatusPending,
		Confidence: clamp(et.Confidence),
	}

	t.DueDate = NormalizeDue(p, t.DueRaw, in.Now)
	if t.DueDate == nil && t.DueRaw != "" {
		if d, err := model.ParseDate(strings.TrimSpace(et.DueDate)); err == nil {
			t.DueDate = &d
		}
	}
	return t
}

// ManualDue reads a caller-supplied due date. A malformed date is kept as the
// due phrase so it can still be normalized, instead of rejecting the task.
func ManualDue(dueDate, dueRaw string) (*model.Date, string) {
	dueDate, dueRaw = strings.TrimSpace(dueDate), strings.TrimSpace(dueRaw)
	if dueDate == "" {
		return nil, dueRaw
	}
	if d, err := model.ParseDate(dueDate); err == nil {
		return &d, dueRaw
	}
	if dueRaw == "" {
		dueRaw = dueDate
	}
	return nil, dueRaw
}

func clamp(c float64) float64 {
	switch {
	case c != c, c < 0:
		return 0
	case c > 1:
		return 1
	}
	return c
}
