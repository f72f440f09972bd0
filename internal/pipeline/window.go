package pipeline

import (
	"time"

	"inbox-planner/config"
	"inbox-planner/internal/schedule"
)

// WindowFromConfig maps the schedule config section onto a Window in loc.
func WindowFromConfig(cfg config.ScheduleConfig, loc *time.Location) schedule.Window {
	return schedule.Window{
		BlockDuration: cfg.BlockDuration,
		Buffer:        cfg.Buffer,
		ProbeStep:     cfg.ProbeStep,
		WorkStartHour: cfg.WorkStartHour,
		WorkEndHour:   cfg.WorkEndHour,
		LookaheadDays: cfg.LookaheadDays,
		Location:      loc,
	}
}

// OptionsFromConfig builds use case options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config, loc *time.Location) Options {
	return Options{
		Workers:        cfg.Pipeline.Workers,
		ItemTimeout:    cfg.Pipeline.ItemTimeout,
		ItemLimit:      cfg.Gmail.MaxItems,
		EventLimit:     cfg.Pipeline.CalendarLimit,
		SortByPriority: cfg.Schedule.SortByPriority,
		Window:         WindowFromConfig(cfg.Schedule, loc),
	}
}
