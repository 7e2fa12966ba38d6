package generate

import (
	"time"

	"jobsearch-backend/internal/session"
)

// ArtifactResponse is the outward-facing representation of an artifact.
type ArtifactResponse struct {
	ArtifactID string    `json:"artifactId"`
	Feature    string    `json:"feature"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ArtifactDetailResponse additionally carries the prompt that produced it.
type ArtifactDetailResponse struct {
	ArtifactResponse
	Prompt string `json:"prompt"`
}

// ChatTurnResponse is one chat history entry.
type ChatTurnResponse struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func toArtifactResponse(a session.Artifact) ArtifactResponse {
	return ArtifactResponse{
		ArtifactID: a.ID,
		Feature:    a.Feature,
		Text:       a.Text,
		CreatedAt:  a.CreatedAt,
	}
}

func toArtifactDetailResponse(a session.Artifact) ArtifactDetailResponse {
	return ArtifactDetailResponse{
		ArtifactResponse: toArtifactResponse(a),
		Prompt:           a.Prompt,
	}
}

func toChatTurnResponse(t session.ChatTurn) ChatTurnResponse {
	return ChatTurnResponse{
		Role:      string(t.Role),
		Text:      t.Text,
		CreatedAt: t.CreatedAt,
	}
}
