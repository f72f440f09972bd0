package task

import "inbox-planner/internal/model"

// Dedup keeps the first task seen for every identity key, preserving input order.
// Only exact key equality collides.
func Dedup(tasks []model.Task) []model.Task {
	seen := make(map[Key]struct{}, len(tasks))
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		k := KeyOf(t)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}
