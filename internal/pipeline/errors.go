package pipeline

import "errors"

var (
	ErrFetch               = errors.New("pipeline: item fetch failed")
	ErrExtraction          = errors.New("pipeline: extraction failed")
	ErrCalendarFetch       = errors.New("pipeline: calendar fetch failed")
	ErrDocFetch            = errors.New("pipeline: document fetch failed")
	ErrCommit              = errors.New("pipeline: calendar write failed")
	ErrSourceNotConfigured = errors.New("pipeline: source not configured")
)
