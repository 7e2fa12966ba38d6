package resumes

import "errors"

var (
	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtraction indicates the upload could not be converted to text.
	// The user may re-upload; nothing else in the session is affected.
	ErrExtraction = errors.New("extraction failed")
)
