package prompt

import "strings"

// Feature identifies one generation mode of the assistant.
type Feature string

const (
	FeatureAnalyze     Feature = "analyze"
	FeatureRewrite     Feature = "rewrite"
	FeatureMatch       Feature = "match"
	FeatureCoverLetter Feature = "cover_letter"
	FeatureLinkedIn    Feature = "linkedin"
	FeatureInterview   Feature = "interview"
	FeatureChat        Feature = "chat"
)

// Features lists every supported feature in a stable order.
func Features() []Feature {
	return []Feature{
		FeatureAnalyze,
		FeatureRewrite,
		FeatureMatch,
		FeatureCoverLetter,
		FeatureLinkedIn,
		FeatureInterview,
		FeatureChat,
	}
}

// ParseFeature normalizes a raw feature identifier.
func ParseFeature(raw string) (Feature, error) {
	f := Feature(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case FeatureAnalyze, FeatureRewrite, FeatureMatch, FeatureCoverLetter, FeatureLinkedIn, FeatureInterview, FeatureChat:
		return f, nil
	default:
		return "", ErrUnknownFeature
	}
}

// String returns the wire identifier.
func (f Feature) String() string { return string(f) }
