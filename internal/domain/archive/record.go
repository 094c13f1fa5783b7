// Package archive persists privacy-gated conversation records and derives the
// collective wisdom aggregate from them: per-theme frequency patterns and
// threshold-synthesized insights.
package archive

import (
	"context"
	"time"

	"github.com/chaosweaver007/Genesis/internal/domain/consent"
)

// ===============================================
// Conversation Record
// ===============================================

// PersonaIndicators counts persona-affinity keyword hits in the user message.
// Counts are raw keyword-presence tallies, not normalized scores.
type PersonaIndicators struct {
	StevenIndicators int `json:"steven_indicators"`
	SarahIndicators  int `json:"sarah_indicators"`
	BothIndicators   int `json:"both_indicators"`
}

// EmotionalTone summarizes the sentiment signals of one exchange.
type EmotionalTone struct {
	UserTone                string `json:"user_tone"`
	ResponseSupportiveness  int    `json:"response_supportiveness"`
	EmotionalShiftPotential int    `json:"emotional_shift_potential"`
}

// ExtractedPatterns is the derived-analysis bundle stored alongside a record
// when the session consented to collective learning.
type ExtractedPatterns struct {
	Themes                   []string          `json:"themes"`
	GuidanceType             string            `json:"guidance_type"`
	PersonaEffectiveness     PersonaIndicators `json:"persona_effectiveness"`
	EmotionalTone            EmotionalTone     `json:"emotional_tone"`
	TransformationIndicators []string          `json:"transformation_indicators"`
}

// WisdomContribution carries the four heuristic 0.0-1.0 scores computed for a
// collective-consent exchange.
type WisdomContribution struct {
	NoveltyScore            float64 `json:"novelty_score"`
	UniversalityScore       float64 `json:"universality_score"`
	TransformationPotential float64 `json:"transformation_potential"`
	EthicalAlignment        float64 `json:"ethical_alignment"`
}

// ConversationRecord is one logged exchange. Raw message text never reaches
// storage; only digests and consent-gated derived fields are kept.
type ConversationRecord struct {
	ID                 uint                `json:"-"`
	PublicID           string              `json:"id"`
	SessionID          string              `json:"session_id"`
	Timestamp          time.Time           `json:"timestamp"`
	UserMessageHash    string              `json:"user_message_hash"`
	AIResponseHash     string              `json:"ai_response_hash"`
	Persona            string              `json:"persona"`
	Mode               string              `json:"mode"`
	ConsentLevel       consent.Level       `json:"consent_level"`
	AnonymizedHash     *string             `json:"anonymized_hash,omitempty"`
	ExtractedPatterns  *ExtractedPatterns  `json:"extracted_patterns,omitempty"`
	WisdomContribution *WisdomContribution `json:"wisdom_contribution,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"-"`
}

// ExpirationCandidate pairs a stored record with the owning session's
// retention window. RetentionDays is nil when the session never stored a
// consent preference.
type ExpirationCandidate struct {
	PublicID      string
	SessionID     string
	Timestamp     time.Time
	RetentionDays *int
}

// ConversationRecordRepository defines the data access interface for
// conversation records.
type ConversationRecordRepository interface {
	Create(ctx context.Context, record *ConversationRecord) error
	Count(ctx context.Context) (int64, error)
	CountByConsentLevel(ctx context.Context) (map[string]int64, error)
	CountActiveSessionsSince(ctx context.Context, since time.Time) (int64, error)

	// ListExpirationCandidates returns every stored record joined with its
	// session's retention setting, for the sweep to filter.
	ListExpirationCandidates(ctx context.Context) ([]ExpirationCandidate, error)
	DeleteByPublicIDs(ctx context.Context, publicIDs []string) (int64, error)
}
