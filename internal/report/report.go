package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"inbox-planner/internal/model"
	"inbox-planner/internal/pipeline"
)

var levels = []model.Priority{model.PriorityHigh, model.PriorityMed, model.PriorityLow}

// Write renders a human-readable summary of a run. Times are shown in loc.
func Write(w io.Writer, out pipeline.RunOutput, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	var b strings.Builder

	b.WriteString("=== Here is your day at a glance ===\n")

	b.WriteString("\n=== Email Summaries ===\n")
	if len(out.Summaries) == 0 {
		b.WriteString("(none)\n")
	}
	for _, s := range out.Summaries {
		fmt.Fprintf(&b, "- [%s] %s: %s\n", s.Category, s.Subject, s.Text)
	}

	b.WriteString("\n=== Tasks by Priority ===\n")
	grouped := make(map[model.Priority][]model.Task, len(levels))
	for _, t := range out.Tasks {
		grouped[t.Priority] = append(grouped[t.Priority], t)
	}
	for _, level := range levels {
		fmt.Fprintf(&b, "\n[%s]\n", level)
		if len(grouped[level]) == 0 {
			b.WriteString("(none)\n")
		}
		for _, t := range grouped[level] {
			fmt.Fprintf(&b, "- %s (due=%s, conf=%.2f)\n", t.Title, dueString(t.DueDate), t.Confidence)
		}
	}

	b.WriteString("\n=== Proposed Time Blocks ===\n")
	if len(out.Proposals) == 0 {
		b.WriteString("(none)\n")
	}
	for _, p := range out.Proposals {
		fmt.Fprintf(&b, "- %s\n", Readable(p, loc))
	}
	if out.Committed > 0 {
		fmt.Fprintf(&b, "(%d booked on the calendar)\n", out.Committed)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Readable formats a block like "Mon 06 May 10:00-11:00: Review budget".
func Readable(p model.ProposedBlock, loc *time.Location) string {
	start, end := p.Start.In(loc), p.End.In(loc)
	if start.YearDay() == end.YearDay() && start.Year() == end.Year() {
		return fmt.Sprintf("%s-%s: %s", start.Format("Mon 02 Jan 15:04"), end.Format("15:04"), p.Title)
	}
	return fmt.Sprintf("%s - %s: %s", start.Format("Mon 02 Jan 15:04"), end.Format("Mon 02 Jan 15:04"), p.Title)
}

func dueString(d *model.Date) string {
	if d == nil {
		return "None"
	}
	return d.String()
}
