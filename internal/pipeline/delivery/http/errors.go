package http

import (
	"errors"

	"inbox-planner/internal/schedule"
)

var (
	errInvalidNow      = errors.New("now must be an RFC 3339 timestamp")
	errInvalidTimezone = errors.New("window.timezone is not a known IANA zone")
)

// isClientError reports whether err should be answered with 400 instead of 500.
func isClientError(err error) bool {
	return errors.Is(err, schedule.ErrInvalidWindow)
}
