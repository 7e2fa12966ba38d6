package resumes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"jobsearch-backend/internal/extract"
	"jobsearch-backend/internal/score"
	"jobsearch-backend/internal/session"
	"jobsearch-backend/internal/shared/storage/object"
	"jobsearch-backend/internal/shared/telemetry"
)

const pastedResumeName = "pasted-text"

// Resume is the session's current resume together with its scorecard.
type Resume struct {
	FileName string
	Text     string
	Score    score.Scorecard
}

// Service contains business logic for the resume slot.
type Service struct {
	Store    object.ObjectStore
	Sessions session.Repo
}

// Upload stores the raw file, extracts its text and sets it as the session's
// current resume. The stored original is kept so the user can re-download it.
func (s *Service) Upload(ctx context.Context, sessionID, fileName string, r io.Reader) (Resume, error) {
	if strings.TrimSpace(fileName) == "" {
		return Resume{}, ErrInvalidInput
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Resume{}, fmt.Errorf("read upload: %w", err)
	}

	storageKey, _, mimeType, err := s.Store.Save(ctx, sessionID, fileName, bytes.NewReader(data))
	if err != nil {
		return Resume{}, fmt.Errorf("store upload: %w", err)
	}

	text, err := extract.ExtractTextFromBytes(ctx, data, mimeType, fileName)
	if err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	if strings.TrimSpace(text) == "" {
		return Resume{}, fmt.Errorf("%w: no text could be extracted", ErrExtraction)
	}

	if _, err := s.Sessions.SetResume(ctx, sessionID, fileName, text); err != nil {
		return Resume{}, err
	}

	telemetry.Info("resume.uploaded", map[string]any{
		"session_id":  sessionID,
		"file_name":   fileName,
		"storage_key": storageKey,
		"text_len":    len(text),
	})

	return Resume{FileName: fileName, Text: text, Score: score.Evaluate(text)}, nil
}

// SetText sets pasted text as the session's current resume.
func (s *Service) SetText(ctx context.Context, sessionID, text string) (Resume, error) {
	if strings.TrimSpace(text) == "" {
		return Resume{}, ErrInvalidInput
	}
	if _, err := s.Sessions.SetResume(ctx, sessionID, pastedResumeName, text); err != nil {
		return Resume{}, err
	}
	return Resume{FileName: pastedResumeName, Text: text, Score: score.Evaluate(text)}, nil
}

// Current returns the session's current resume.
func (s *Service) Current(ctx context.Context, sessionID string) (Resume, error) {
	name, text, err := s.Sessions.GetResume(ctx, sessionID)
	if err != nil {
		return Resume{}, err
	}
	return Resume{FileName: name, Text: text, Score: score.Evaluate(text)}, nil
}
