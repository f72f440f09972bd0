package task

import (
	"fmt"
	"sort"
	"strings"

	"inbox-planner/internal/model"
)

// soonDays is how far out a due date still counts as urgent.
const soonDays = 2

var reviewKeywords = []string{"review", "check", "look at"}

// AssignPriority maps a task to its tier:
//   - due today, overdue or within two days: HIGH
//   - due later: MED
//   - no due date but a review-style title: MED
//   - otherwise LOW
func AssignPriority(t model.Task, today model.Date) model.Priority {
	if t.DueDate != nil {
		if t.DueDate.DaysSince(today) <= soonDays {
			return model.PriorityHigh
		}
		return model.PriorityMed
	}

	title := strings.ToLower(t.Title)
	for _, kw := range reviewKeywords {
		if strings.Contains(title, kw) {
			return model.PriorityMed
		}
	}
	return model.PriorityLow
}

// Prioritize returns copies of tasks with Priority set, plus one log line per task.
func Prioritize(tasks []model.Task, today model.Date) ([]model.Task, []string) {
	out := make([]model.Task, len(tasks))
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		p := AssignPriority(t, today)
		out[i] = t.WithPriority(p)
		lines[i] = fmt.Sprintf("Task '%s' -> priority %s", t.Title, p)
	}
	return out, lines
}

// SortByPriority returns a copy ordered HIGH, MED, LOW. Ties keep their input order.
func SortByPriority(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}
