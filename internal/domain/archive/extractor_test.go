package archive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
)

func TestExtractPatternsThemes(t *testing.T) {
	patterns := archive.ExtractPatterns(
		"I want healing for my relationship with my family",
		"Consider what your heart already knows.",
	)
	require.NotNil(t, patterns)
	assert.ElementsMatch(t, []string{"relationships", "healing"}, patterns.Themes)
}

// Keyword order in the message must not change which themes are tagged.
func TestExtractPatternsThemeOrderIndependence(t *testing.T) {
	first := archive.ExtractPatterns("healing my relationship", "ok")
	second := archive.ExtractPatterns("my relationship needs healing", "ok")
	assert.Equal(t, first.Themes, second.Themes)
}

func TestExtractPatternsGuidanceType(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{name: "reflective wins first", response: "Take time to reflect on this and try one step", want: "reflective"},
		{name: "actionable", response: "Try one small step each morning", want: "actionable"},
		{name: "perspective shift", response: "Another view may serve you", want: "perspective_shift"},
		{name: "emotional support", response: "Your heart carries this with compassion", want: "emotional_support"},
		{name: "informational fallback", response: "The sky is blue.", want: "informational"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns := archive.ExtractPatterns("hello", tt.response)
			assert.Equal(t, tt.want, patterns.GuidanceType)
		})
	}
}

func TestExtractPatternsPersonaIndicators(t *testing.T) {
	patterns := archive.ExtractPatterns(
		"I need logic and structure but also feel my heart pulling; this is complex and I need guidance",
		"ok",
	)
	// logic, structure hit for steven; feel, heart for sarah;
	// complex, guidance for both.
	assert.Equal(t, 2, patterns.PersonaEffectiveness.StevenIndicators)
	assert.Equal(t, 2, patterns.PersonaEffectiveness.SarahIndicators)
	assert.Equal(t, 2, patterns.PersonaEffectiveness.BothIndicators)
}

func TestExtractPatternsEmotionalTone(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "positive outweighs negative", message: "happy and grateful though a bit worried", want: "positive"},
		{name: "negative when any negative and not outweighed", message: "sad and anxious but hopeful", want: "negative"},
		{name: "neutral without signals", message: "thinking about the question", want: "neutral"},
		{name: "tie with negative present is negative", message: "happy yet sad", want: "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns := archive.ExtractPatterns(tt.message, "ok")
			assert.Equal(t, tt.want, patterns.EmotionalTone.UserTone)
		})
	}
}

func TestExtractPatternsSupportiveness(t *testing.T) {
	patterns := archive.ExtractPatterns(
		"hello",
		"I understand, and I support you with gentle compassion and hopeful joy",
	)
	// understand, support, gentle, compassion all present.
	assert.Equal(t, 4, patterns.EmotionalTone.ResponseSupportiveness)
	// hopeful and joy add two positive hits on top of supportiveness.
	assert.Equal(t, 6, patterns.EmotionalTone.EmotionalShiftPotential)
}

func TestExtractPatternsTransformationIndicators(t *testing.T) {
	patterns := archive.ExtractPatterns(
		"I had a breakthrough and I am ready to change, but part of me feels stuck",
		"Practice this daily and integrate what you learned.",
	)
	assert.ElementsMatch(t,
		[]string{"breakthrough_moment", "growth_readiness", "resistance_present", "integration_guidance"},
		patterns.TransformationIndicators)
}

func TestExtractPatternsEmptyInputs(t *testing.T) {
	patterns := archive.ExtractPatterns("", "")
	require.NotNil(t, patterns)
	assert.Empty(t, patterns.Themes)
	assert.Equal(t, "informational", patterns.GuidanceType)
	assert.Equal(t, "neutral", patterns.EmotionalTone.UserTone)
	assert.Empty(t, patterns.TransformationIndicators)
	assert.Zero(t, patterns.PersonaEffectiveness.StevenIndicators)
}

// Matching is substring containment, not tokenization.
func TestExtractPatternsSubstringMatching(t *testing.T) {
	patterns := archive.ExtractPatterns("my artwork shows transformation", "ok")
	assert.Contains(t, patterns.Themes, "creativity")      // "art" inside "artwork"
	assert.Contains(t, patterns.Themes, "personal_growth") // "transformation"
}
