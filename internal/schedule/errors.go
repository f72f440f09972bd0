package schedule

import "errors"

// ErrInvalidWindow is returned by Window.Validate, wrapped with the offending field.
var ErrInvalidWindow = errors.New("invalid scheduling window")
