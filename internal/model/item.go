package model

import "time"

// RawItem is an unstructured input such as an email.
type RawItem struct {
	ID         string    `json:"id" yaml:"id"`
	Subject    string    `json:"subject" yaml:"subject"`
	Body       string    `json:"body" yaml:"body"`
	From       string    `json:"from,omitempty" yaml:"from,omitempty"`
	ReceivedAt time.Time `json:"received_at,omitempty" yaml:"received_at,omitempty"`
}

// Category is the classification an extractor assigns to an item.
type Category string

const (
	CategoryPromo   Category = "PROMO"
	CategoryAlert   Category = "ALERT"
	CategoryMeeting Category = "MEETING"
	CategoryProject Category = "PROJECT"
	CategoryOther   Category = "OTHER"
)

// ExtractedTask is a task candidate as returned by the extractor, before normalization.
type ExtractedTask struct {
	Title      string  `json:"title"`
	DueRaw     string  `json:"due_raw,omitempty"`
	DueDate    string  `json:"due_date,omitempty"`
	Priority   string  `json:"priority,omitempty"`
	Confidence float64 `json:"confidence"`
}

// ExtractionResult is the structured output of one extraction call.
type ExtractionResult struct {
	Summary  string          `json:"summary"`
	Category Category        `json:"category"`
	Tasks    []ExtractedTask `json:"tasks"`
}

// ItemSummary records the one-line summary produced for an item.
type ItemSummary struct {
	ItemID   string   `json:"item_id" yaml:"item_id"`
	Subject  string   `json:"subject" yaml:"subject"`
	Category Category `json:"category" yaml:"category"`
	Text     string   `json:"text" yaml:"text"`
}
