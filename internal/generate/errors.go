package generate

import "errors"

var (
	// ErrNoResume indicates the session has no resume to generate from.
	ErrNoResume = errors.New("no resume in session")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
