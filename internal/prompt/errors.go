package prompt

import "errors"

var (
	// ErrUnknownFeature indicates the feature identifier is not configured.
	ErrUnknownFeature = errors.New("unknown feature")

	// ErrMissingResume indicates no resume text was supplied.
	ErrMissingResume = errors.New("resume text is required")

	// ErrMissingQuestion indicates a chat build without a question.
	ErrMissingQuestion = errors.New("question is required")

	// ErrMissingJobDescription indicates a match build without a job description.
	ErrMissingJobDescription = errors.New("job description is required")
)
