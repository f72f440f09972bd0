package schedule

import (
	"fmt"
	"time"
)

const (
	DefaultBlockDuration = time.Hour
	DefaultBuffer        = 15 * time.Minute
	DefaultProbeStep     = 30 * time.Minute
	DefaultWorkStartHour = 9
	DefaultWorkEndHour   = 18
	DefaultLookaheadDays = 3
)

// Window constrains where the allocator may place blocks.
type Window struct {
	BlockDuration time.Duration
	Buffer        time.Duration
	ProbeStep     time.Duration
	WorkStartHour int
	WorkEndHour   int
	LookaheadDays int
	// Location is where working hours and day boundaries are evaluated. Nil means UTC.
	Location *time.Location
}

// DefaultWindow returns a 09-18 UTC window with 1h blocks, a 15m buffer and a 3 day lookahead.
func DefaultWindow() Window {
	return Window{
		BlockDuration: DefaultBlockDuration,
		Buffer:        DefaultBuffer,
		ProbeStep:     DefaultProbeStep,
		WorkStartHour: DefaultWorkStartHour,
		WorkEndHour:   DefaultWorkEndHour,
		LookaheadDays: DefaultLookaheadDays,
		Location:      time.UTC,
	}
}

// Validate checks the window invariants. A block longer than the working day is
// allowed; it simply never fits.
func (w Window) Validate() error {
	switch {
	case w.BlockDuration <= 0:
		return fmt.Errorf("%w: block_duration must be positive, got %s", ErrInvalidWindow, w.BlockDuration)
	case w.ProbeStep <= 0:
		return fmt.Errorf("%w: probe_step must be positive, got %s", ErrInvalidWindow, w.ProbeStep)
	case w.Buffer < 0:
		return fmt.Errorf("%w: buffer must not be negative, got %s", ErrInvalidWindow, w.Buffer)
	case w.WorkStartHour < 0 || w.WorkStartHour > 23:
		return fmt.Errorf("%w: work_start_hour out of range, got %d", ErrInvalidWindow, w.WorkStartHour)
	case w.WorkEndHour <= w.WorkStartHour || w.WorkEndHour > 24:
		return fmt.Errorf("%w: work_end_hour must be after work_start_hour and at most 24, got %d", ErrInvalidWindow, w.WorkEndHour)
	case w.LookaheadDays < 0:
		return fmt.Errorf("%w: lookahead_days must not be negative, got %d", ErrInvalidWindow, w.LookaheadDays)
	}
	return nil
}

func (w Window) location() *time.Location {
	if w.Location == nil {
		return time.UTC
	}
	return w.Location
}

// at returns hour o'clock on the calendar day of t.
func (w Window) at(t time.Time, hour int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, w.location())
}
