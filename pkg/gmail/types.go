package gmail

import "time"

// DefaultQuery restricts listing to the primary inbox tab.
const DefaultQuery = "in:inbox category:primary"

// ListRequest is the input for listing recent messages.
type ListRequest struct {
	Query string
	Limit int64
}

// Message is a fetched email reduced to what task extraction needs.
type Message struct {
	ID         string
	From       string
	To         string
	Subject    string
	Body       string
	ReceivedAt time.Time
}
