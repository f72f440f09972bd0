package extraction

import "time"

const (
	// DefaultMaxTasks caps the tasks kept per email.
	DefaultMaxTasks = 5
	// BulletConfidence is assigned to tasks recovered from a bullet list.
	BulletConfidence = 0.8

	DefaultTemperature = 0.2
)

// Config tunes the extractor. Zero values take the defaults above.
type Config struct {
	MaxTasks    int
	Temperature float64
	// Owner restricts meeting action items to one person when set.
	Owner string
	// RequestsPerSec and Burst bound calls to the model. RequestsPerSec <= 0 disables the limit.
	RequestsPerSec float64
	Burst          int
	// Now is the clock used for the "today" line of prompts.
	Now func() time.Time
}
