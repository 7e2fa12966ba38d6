package session

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo. Sessions live for the
// process lifetime; there is no persistence across restarts.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]*Session
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]*Session),
	}
}

// SetResume replaces the session's current resume, creating the session if needed.
func (r *MemoryRepo) SetResume(ctx context.Context, sessionID, resumeName, resumeText string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.ensureLocked(sessionID)
	s.ResumeName = resumeName
	s.ResumeText = resumeText
	s.UpdatedAt = time.Now().UTC()
	return snapshot(s), nil
}

// GetResume returns the current resume text and its display name.
func (r *MemoryRepo) GetResume(ctx context.Context, sessionID string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.data[sessionID]
	if !ok {
		return "", "", ErrNotFound
	}
	if s.ResumeText == "" {
		return "", "", ErrNoResume
	}
	return s.ResumeName, s.ResumeText, nil
}

// AppendArtifact appends a generated artifact to the session log.
func (r *MemoryRepo) AppendArtifact(ctx context.Context, sessionID string, artifact Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.ensureLocked(sessionID)
	s.Artifacts = append(s.Artifacts, artifact)
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// ListArtifacts returns the session's artifacts in creation order.
func (r *MemoryRepo) ListArtifacts(ctx context.Context, sessionID string) ([]Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.data[sessionID]
	if !ok {
		return []Artifact{}, nil
	}
	out := make([]Artifact, len(s.Artifacts))
	copy(out, s.Artifacts)
	return out, nil
}

// GetArtifact returns a single artifact by ID.
func (r *MemoryRepo) GetArtifact(ctx context.Context, sessionID, artifactID string) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.data[sessionID]
	if !ok {
		return Artifact{}, ErrArtifactNotFound
	}
	for i := range s.Artifacts {
		if s.Artifacts[i].ID == artifactID {
			return s.Artifacts[i], nil
		}
	}
	return Artifact{}, ErrArtifactNotFound
}

// AppendChat appends one chat turn to the history.
func (r *MemoryRepo) AppendChat(ctx context.Context, sessionID string, turn ChatTurn) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.ensureLocked(sessionID)
	s.Chat = append(s.Chat, turn)
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// ListChat returns the chat history in insertion order.
func (r *MemoryRepo) ListChat(ctx context.Context, sessionID string) ([]ChatTurn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.data[sessionID]
	if !ok {
		return []ChatTurn{}, nil
	}
	out := make([]ChatTurn, len(s.Chat))
	copy(out, s.Chat)
	return out, nil
}

// ClearChat drops the chat history, keeping resume and artifacts.
func (r *MemoryRepo) ClearChat(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.data[sessionID]
	if !ok {
		return nil
	}
	s.Chat = nil
	s.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MemoryRepo) ensureLocked(sessionID string) *Session {
	s, ok := r.data[sessionID]
	if !ok {
		now := time.Now().UTC()
		s = &Session{ID: sessionID, CreatedAt: now, UpdatedAt: now}
		r.data[sessionID] = s
	}
	return s
}

func snapshot(s *Session) Session {
	out := *s
	out.Artifacts = append([]Artifact(nil), s.Artifacts...)
	out.Chat = append([]ChatTurn(nil), s.Chat...)
	return out
}

var _ Repo = (*MemoryRepo)(nil)
