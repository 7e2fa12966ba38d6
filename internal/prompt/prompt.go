package prompt

import (
	_ "embed"
	"fmt"
	"strings"
)

var (
	//go:embed templates/analyze.txt
	templateAnalyze string
	//go:embed templates/rewrite.txt
	templateRewrite string
	//go:embed templates/match.txt
	templateMatch string
	//go:embed templates/cover_letter.txt
	templateCoverLetter string
	//go:embed templates/linkedin.txt
	templateLinkedIn string
	//go:embed templates/interview.txt
	templateInterview string
	//go:embed templates/chat.txt
	templateChat string
)

// HistoryTurn is one prior chat exchange carried into the chat prompt.
type HistoryTurn struct {
	Role string
	Text string
}

// Inputs carries the user-supplied text substituted into a feature template.
type Inputs struct {
	ResumeText     string
	JobDescription string
	Question       string
	History        []HistoryTurn
}

// Template returns the raw template text and whether the feature is known.
func Template(feature Feature) (string, bool) {
	switch feature {
	case FeatureAnalyze:
		return templateAnalyze, true
	case FeatureRewrite:
		return templateRewrite, true
	case FeatureMatch:
		return templateMatch, true
	case FeatureCoverLetter:
		return templateCoverLetter, true
	case FeatureLinkedIn:
		return templateLinkedIn, true
	case FeatureInterview:
		return templateInterview, true
	case FeatureChat:
		return templateChat, true
	default:
		return "", false
	}
}

// Build substitutes the inputs into the fixed template for the feature.
// Validation is presence-only: resume text always, a question for chat,
// a job description for match.
func Build(feature Feature, in Inputs) (string, error) {
	template, ok := Template(feature)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFeature, string(feature))
	}
	if strings.TrimSpace(in.ResumeText) == "" {
		return "", ErrMissingResume
	}
	if feature == FeatureChat && strings.TrimSpace(in.Question) == "" {
		return "", ErrMissingQuestion
	}
	if feature == FeatureMatch && strings.TrimSpace(in.JobDescription) == "" {
		return "", ErrMissingJobDescription
	}

	replacer := strings.NewReplacer(
		"{{RESUME_TEXT}}", in.ResumeText,
		"{{JOB_DESCRIPTION_BLOCK}}", block("Job Description", in.JobDescription),
		"{{QUESTION_BLOCK}}", block("User Question", in.Question),
		"{{HISTORY_BLOCK}}", historyBlock(in.History),
	)
	return replacer.Replace(template), nil
}

func block(label, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return fmt.Sprintf("%s:\n%s\n", label, text)
}

func historyBlock(history []HistoryTurn) string {
	if len(history) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Conversation so far:\n")
	for _, turn := range history {
		b.WriteString(turn.Role)
		b.WriteString(": ")
		b.WriteString(turn.Text)
		b.WriteString("\n")
	}
	return b.String()
}
