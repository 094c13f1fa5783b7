package archive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
)

func TestScoreContributionNovelty(t *testing.T) {
	patterns := &archive.ExtractedPatterns{
		Themes:                   []string{"healing", "relationships", "personal_growth"},
		TransformationIndicators: []string{"breakthrough_moment", "growth_readiness"},
	}
	scores := archive.ScoreContribution(patterns, "a calm reply")
	assert.InDelta(t, 0.5, scores.NoveltyScore, 1e-9)
}

func TestScoreContributionNoveltyCapped(t *testing.T) {
	patterns := &archive.ExtractedPatterns{
		Themes: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
		TransformationIndicators: []string{
			"breakthrough_moment", "growth_readiness", "resistance_present", "integration_guidance",
		},
	}
	scores := archive.ScoreContribution(patterns, "reply")
	assert.Equal(t, 1.0, scores.NoveltyScore)
}

func TestScoreContributionUniversality(t *testing.T) {
	patterns := &archive.ExtractedPatterns{
		Themes: []string{"personal_growth", "relationships", "healing"},
	}
	scores := archive.ScoreContribution(patterns, "reply")
	// healing is not in the universal set.
	assert.InDelta(t, 0.5, scores.UniversalityScore, 1e-9)
}

func TestScoreContributionTransformationPotential(t *testing.T) {
	patterns := &archive.ExtractedPatterns{
		TransformationIndicators: []string{
			"breakthrough_moment", "growth_readiness", "resistance_present",
		},
	}
	scores := archive.ScoreContribution(patterns, "reply")
	// resistance_present does not count toward the positive set.
	assert.InDelta(t, 2.0/3.0, scores.TransformationPotential, 1e-9)
}

func TestScoreContributionEthicalAlignment(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     float64
	}{
		{
			name:     "clean response passes the absence check only",
			response: "a calm reply",
			want:     0.2,
		},
		{
			name:     "all markers present",
			response: "Your sovereignty matters; with consent and transparency, in service to life.",
			want:     1.0,
		},
		{
			name:     "manipulative term cancels the absence check",
			response: "sovereignty through control",
			want:     0.2,
		},
		{
			name:     "substring match flags longer words",
			response: "take control of uncontrollable feelings",
			want:     0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := archive.ScoreContribution(&archive.ExtractedPatterns{}, tt.response)
			assert.InDelta(t, tt.want, scores.EthicalAlignment, 1e-9)
		})
	}
}

func TestScoreContributionEmptyInputs(t *testing.T) {
	scores := archive.ScoreContribution(&archive.ExtractedPatterns{}, "")
	assert.Zero(t, scores.NoveltyScore)
	assert.Zero(t, scores.UniversalityScore)
	assert.Zero(t, scores.TransformationPotential)
	// Empty response contains no manipulative terms, so the absence check passes.
	assert.InDelta(t, 0.2, scores.EthicalAlignment, 1e-9)
}
