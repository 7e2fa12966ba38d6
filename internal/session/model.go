package session

import "time"

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Artifact is one piece of generated text produced by a single model call.
// Artifacts are immutable after creation and traceable to the prompt and
// feature that produced them.
type Artifact struct {
	ID        string
	Feature   string
	Prompt    string
	Text      string
	CreatedAt time.Time
}

// ChatTurn is one entry of the session's chat history.
type ChatTurn struct {
	Role      Role
	Text      string
	CreatedAt time.Time
}

// Session holds the state of one interactive session: the current resume
// slot, the append-only artifact log, and the chat history.
type Session struct {
	ID         string
	ResumeText string
	ResumeName string
	Artifacts  []Artifact
	Chat       []ChatTurn
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
