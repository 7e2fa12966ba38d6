package session

import "context"

// Repo defines storage operations for sessions. The artifact log is
// append-only; only the current-resume slot is replaceable.
type Repo interface {
	// SetResume replaces the session's current resume, creating the session
	// if needed.
	SetResume(ctx context.Context, sessionID, resumeName, resumeText string) (Session, error)

	// GetResume returns the current resume text and its display name.
	GetResume(ctx context.Context, sessionID string) (name string, text string, err error)

	// AppendArtifact appends a generated artifact; artifacts are never
	// removed or overwritten.
	AppendArtifact(ctx context.Context, sessionID string, artifact Artifact) error

	// ListArtifacts returns the session's artifacts in creation order.
	ListArtifacts(ctx context.Context, sessionID string) ([]Artifact, error)

	// GetArtifact returns a single artifact by ID.
	GetArtifact(ctx context.Context, sessionID, artifactID string) (Artifact, error)

	// AppendChat appends one chat turn to the history.
	AppendChat(ctx context.Context, sessionID string, turn ChatTurn) error

	// ListChat returns the chat history in insertion order.
	ListChat(ctx context.Context, sessionID string) ([]ChatTurn, error)

	// ClearChat drops the chat history, keeping resume and artifacts.
	ClearChat(ctx context.Context, sessionID string) error
}
