package extraction

import "errors"

var (
	ErrEmptyInput        = errors.New("extraction: empty input")
	ErrMalformedResponse = errors.New("extraction: malformed model response")
	ErrGeneration        = errors.New("extraction: generation failed")
)
