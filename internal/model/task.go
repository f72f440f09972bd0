package model

// Source identifies where a task was extracted from.
type Source string

const (
	SourceEmail   Source = "email"
	SourceMeeting Source = "meeting"
	SourceManual  Source = "manual"
)

// Priority is the discrete urgency tier of a task. The zero value means unassigned.
type Priority string

const (
	PriorityHigh Priority = "HIGH"
	PriorityMed  Priority = "MED"
	PriorityLow  Priority = "LOW"
)

// Rank orders priorities for sorting: HIGH first, unassigned last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMed:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusDone    Status = "DONE"
)

// Task is the canonical action item. It is handled as a value: after dedup only
// Priority changes, and only by producing an updated copy.
type Task struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Source          Source   `json:"source" yaml:"source"`
	Priority        Priority `json:"priority,omitempty" yaml:"priority,omitempty"`
	DueRaw          string   `json:"due_raw,omitempty" yaml:"due_raw,omitempty"`
	DueDate         *Date    `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	EstimateMinutes *int     `json:"estimate_minutes,omitempty" yaml:"estimate_minutes,omitempty"`
	Status          Status   `json:"status" yaml:"status"`
	Confidence      float64  `json:"confidence" yaml:"confidence"`
}

// WithPriority returns a copy of t carrying p.
func (t Task) WithPriority(p Priority) Task {
	t.Priority = p
	return t
}
