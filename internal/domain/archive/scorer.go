package archive

import (
	"math"
	"strings"
)

// universalThemes is the fixed set whose overlap drives the universality
// score.
var universalThemes = map[string]bool{
	"personal_growth": true,
	"meaning_purpose": true,
	"relationships":   true,
	"decision_making": true,
}

// positiveIndicators drive the transformation-potential score;
// resistance_present does not count toward it.
var positiveIndicators = map[string]bool{
	"breakthrough_moment":  true,
	"growth_readiness":     true,
	"integration_guidance": true,
}

// ethicalMarkers and manipulativeTerms back the five ethical-alignment
// checks: presence of each marker, plus absence of every manipulative term.
var (
	ethicalMarkers    = []string{"sovereignty", "consent", "transparency", "service to life"}
	manipulativeTerms = []string{"manipulate", "control", "force"}
)

// ScoreContribution computes the four heuristic 0.0-1.0 wisdom scores for an
// extracted bundle. These are coarse bounded ratios, not calibrated metrics.
func ScoreContribution(patterns *ExtractedPatterns, aiResponse string) *WisdomContribution {
	responseLower := strings.ToLower(aiResponse)

	novelty := math.Min(1, float64(len(patterns.Themes)+len(patterns.TransformationIndicators))/10)

	universalHits := 0
	for _, theme := range patterns.Themes {
		if universalThemes[theme] {
			universalHits++
		}
	}
	universality := math.Min(1, float64(universalHits)/4)

	positiveHits := 0
	for _, indicator := range patterns.TransformationIndicators {
		if positiveIndicators[indicator] {
			positiveHits++
		}
	}
	transformation := math.Min(1, float64(positiveHits)/3)

	passed := 0
	for _, marker := range ethicalMarkers {
		if strings.Contains(responseLower, marker) {
			passed++
		}
	}
	if !containsAny(responseLower, manipulativeTerms) {
		passed++
	}

	return &WisdomContribution{
		NoveltyScore:            novelty,
		UniversalityScore:       universality,
		TransformationPotential: transformation,
		EthicalAlignment:        float64(passed) / 5,
	}
}
