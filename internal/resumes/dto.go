package resumes

import "jobsearch-backend/internal/score"

// ResumeResponse is the outward-facing representation of the current resume.
type ResumeResponse struct {
	FileName string          `json:"fileName"`
	Text     string          `json:"text"`
	Score    score.Scorecard `json:"score"`
}

func toResponse(r Resume) ResumeResponse {
	return ResumeResponse{
		FileName: r.FileName,
		Text:     r.Text,
		Score:    r.Score,
	}
}
