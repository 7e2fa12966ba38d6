package generate

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobsearch-backend/internal/llm"
	"jobsearch-backend/internal/prompt"
	"jobsearch-backend/internal/session"
	"jobsearch-backend/internal/shared/metrics"
	"jobsearch-backend/internal/shared/storage/object"
	"jobsearch-backend/internal/shared/telemetry"
	"jobsearch-backend/internal/shared/util"
)

// chatHistoryWindow bounds how many prior turns are carried into the chat prompt.
const chatHistoryWindow = 10

// Service runs the prompt-to-artifact pipeline: build the prompt for a
// feature, call the model once, append the immutable artifact.
type Service struct {
	Sessions session.Repo
	LLM      llm.Client
	Store    object.ObjectStore
}

// Generate invokes one feature for the session and records the artifact.
func (s *Service) Generate(ctx context.Context, sessionID, rawFeature, jobDescription, question string) (session.Artifact, error) {
	feature, err := prompt.ParseFeature(rawFeature)
	if err != nil {
		return session.Artifact{}, err
	}
	if feature == prompt.FeatureChat {
		return session.Artifact{}, fmt.Errorf("%w: use the chat endpoint for conversation", ErrInvalidInput)
	}

	_, resumeText, err := s.Sessions.GetResume(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrNoResume) {
			return session.Artifact{}, ErrNoResume
		}
		return session.Artifact{}, err
	}

	promptText, err := prompt.Build(feature, prompt.Inputs{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Question:       question,
	})
	if err != nil {
		return session.Artifact{}, err
	}

	text, err := s.complete(ctx, sessionID, feature, promptText)
	if err != nil {
		return session.Artifact{}, err
	}

	artifact := session.Artifact{
		ID:        uuid.NewString(),
		Feature:   feature.String(),
		Prompt:    promptText,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Sessions.AppendArtifact(ctx, sessionID, artifact); err != nil {
		return session.Artifact{}, err
	}
	return artifact, nil
}

// Chat answers one user message against the current resume and appends both
// turns to the session's history.
func (s *Service) Chat(ctx context.Context, sessionID, message string) (session.ChatTurn, error) {
	if strings.TrimSpace(message) == "" {
		return session.ChatTurn{}, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	_, resumeText, err := s.Sessions.GetResume(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrNoResume) {
			return session.ChatTurn{}, ErrNoResume
		}
		return session.ChatTurn{}, err
	}

	history, err := s.Sessions.ListChat(ctx, sessionID)
	if err != nil {
		return session.ChatTurn{}, err
	}
	if len(history) > chatHistoryWindow {
		history = history[len(history)-chatHistoryWindow:]
	}
	turns := make([]prompt.HistoryTurn, 0, len(history))
	for _, t := range history {
		turns = append(turns, prompt.HistoryTurn{Role: string(t.Role), Text: t.Text})
	}

	promptText, err := prompt.Build(prompt.FeatureChat, prompt.Inputs{
		ResumeText: resumeText,
		Question:   message,
		History:    turns,
	})
	if err != nil {
		return session.ChatTurn{}, err
	}

	reply, err := s.complete(ctx, sessionID, prompt.FeatureChat, promptText)
	if err != nil {
		return session.ChatTurn{}, err
	}

	now := time.Now().UTC()
	if err := s.Sessions.AppendChat(ctx, sessionID, session.ChatTurn{Role: session.RoleUser, Text: message, CreatedAt: now}); err != nil {
		return session.ChatTurn{}, err
	}
	assistant := session.ChatTurn{Role: session.RoleAssistant, Text: reply, CreatedAt: time.Now().UTC()}
	if err := s.Sessions.AppendChat(ctx, sessionID, assistant); err != nil {
		return session.ChatTurn{}, err
	}
	return assistant, nil
}

// History returns the session's chat history.
func (s *Service) History(ctx context.Context, sessionID string) ([]session.ChatTurn, error) {
	return s.Sessions.ListChat(ctx, sessionID)
}

// ClearHistory drops the session's chat history.
func (s *Service) ClearHistory(ctx context.Context, sessionID string) error {
	return s.Sessions.ClearChat(ctx, sessionID)
}

// Artifacts returns the session's artifacts in creation order.
func (s *Service) Artifacts(ctx context.Context, sessionID string) ([]session.Artifact, error) {
	return s.Sessions.ListArtifacts(ctx, sessionID)
}

// Artifact returns one artifact by ID.
func (s *Service) Artifact(ctx context.Context, sessionID, artifactID string) (session.Artifact, error) {
	return s.Sessions.GetArtifact(ctx, sessionID, artifactID)
}

// Compare returns two artifacts side by side for version comparison.
func (s *Service) Compare(ctx context.Context, sessionID, leftID, rightID string) (session.Artifact, session.Artifact, error) {
	left, err := s.Sessions.GetArtifact(ctx, sessionID, leftID)
	if err != nil {
		return session.Artifact{}, session.Artifact{}, err
	}
	right, err := s.Sessions.GetArtifact(ctx, sessionID, rightID)
	if err != nil {
		return session.Artifact{}, session.Artifact{}, err
	}
	return left, right, nil
}

// SaveArtifact writes the artifact text to the object store as a flat text
// file and returns the storage key.
func (s *Service) SaveArtifact(ctx context.Context, sessionID, artifactID, fileName string) (string, error) {
	artifact, err := s.Sessions.GetArtifact(ctx, sessionID, artifactID)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(fileName) == "" {
		fileName = fmt.Sprintf("%s-%s.txt", artifact.Feature, artifact.ID)
	}
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	storageKey := path.Join(util.HashSessionKey(sessionID), "artifacts", sanitized)
	if _, err := s.Store.SaveWithKey(ctx, storageKey, "text/plain; charset=utf-8", strings.NewReader(artifact.Text)); err != nil {
		return "", fmt.Errorf("save artifact: %w", err)
	}

	telemetry.Info("artifact.saved", map[string]any{
		"session_id":  sessionID,
		"artifact_id": artifactID,
		"storage_key": storageKey,
	})
	return storageKey, nil
}

// complete performs the single synchronous model call for a built prompt.
func (s *Service) complete(ctx context.Context, sessionID string, feature prompt.Feature, promptText string) (string, error) {
	metrics.IncGenerationStarted()
	start := time.Now()
	text, err := s.LLM.Complete(ctx, promptText)
	duration := time.Since(start)
	metrics.ObserveGenerationDurationMs(float64(duration.Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncGenerationFailed()
		telemetry.Error("generation.failed", map[string]any{
			"session_id":  sessionID,
			"feature":     feature.String(),
			"duration_ms": float64(duration.Microseconds()) / 1000.0,
			"err":         err.Error(),
		})
		return "", err
	}
	metrics.IncGenerationCompleted()
	telemetry.Info("generation.complete", map[string]any{
		"session_id":  sessionID,
		"feature":     feature.String(),
		"duration_ms": float64(duration.Microseconds()) / 1000.0,
		"text_len":    len(text),
	})
	return text, nil
}
