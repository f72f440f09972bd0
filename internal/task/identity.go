package task

import (
	"strings"

	"inbox-planner/internal/model"
)

// Key is the identity of a task for deduplication.
type Key struct {
	Title string
	Due   string
}

// KeyOf returns the identity key of t. A nil due date is a valid key value.
func KeyOf(t model.Task) Key {
	k := Key{Title: NormalizeTitle(t.Title)}
	if t.DueDate != nil {
		k.Due = t.DueDate.String()
	}
	return k
}

// NormalizeTitle lower-cases and trims a title.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
