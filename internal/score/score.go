package score

import "strings"

// Scorecard is a cheap keyword heuristic over the extracted resume text.
// It is computed locally and never calls the model.
type Scorecard struct {
	Contact    int `json:"contact"`
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Total      int `json:"total"`
}

const sectionPoints = 10

var contactWords = []string{"email", "phone", "contact"}

// Evaluate scores the resume text on the presence of contact, skills and
// experience sections.
func Evaluate(text string) Scorecard {
	lower := strings.ToLower(text)

	var card Scorecard
	for _, word := range contactWords {
		if strings.Contains(lower, word) {
			card.Contact = sectionPoints
			break
		}
	}
	if strings.Contains(lower, "skills") {
		card.Skills = sectionPoints
	}
	if strings.Contains(lower, "experience") {
		card.Experience = sectionPoints
	}
	card.Total = card.Contact + card.Skills + card.Experience
	return card
}
