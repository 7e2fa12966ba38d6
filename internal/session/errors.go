package session

import "errors"

var (
	// ErrNotFound indicates no session exists for the given ID.
	ErrNotFound = errors.New("session not found")

	// ErrNoResume indicates the session has no current resume text.
	ErrNoResume = errors.New("no resume in session")

	// ErrArtifactNotFound indicates the artifact does not exist in the session.
	ErrArtifactNotFound = errors.New("artifact not found")
)
