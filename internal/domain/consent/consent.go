// Package consent provides session-scoped data-sharing preferences and the
// gating checks applied before any conversation analysis runs.
package consent

import (
	"context"
	"strings"
	"time"
)

// Level describes how much of a session's conversation data may be processed.
type Level string

const (
	// LevelPrivate keeps content hashes and routing metadata only.
	LevelPrivate Level = "private"
	// LevelAnonymous additionally stores an anonymized pair hash.
	LevelAnonymous Level = "anonymous"
	// LevelCollective additionally feeds pattern extraction and insight synthesis.
	LevelCollective Level = "collective"
)

// DefaultRetentionDays applies to sessions that never stored a preference.
const DefaultRetentionDays = 30

// ParseLevel normalizes a raw consent-level string. Empty input falls back to
// LevelPrivate; unknown values report ok == false.
func ParseLevel(raw string) (Level, bool) {
	switch level := Level(strings.ToLower(strings.TrimSpace(raw))); level {
	case "":
		return LevelPrivate, true
	case LevelPrivate, LevelAnonymous, LevelCollective:
		return level, true
	default:
		return level, false
	}
}

// AllowsAnonymizedHash reports whether an anonymized pair hash may be stored.
func (l Level) AllowsAnonymizedHash() bool {
	return l == LevelAnonymous || l == LevelCollective
}

// AllowsCollectiveLearning reports whether pattern extraction and insight
// synthesis may run for conversations under this level.
func (l Level) AllowsCollectiveLearning() bool {
	return l == LevelCollective
}

// Preference is a session's stored consent configuration.
type Preference struct {
	ID                        uint      `json:"-"`
	SessionID                 string    `json:"session_id"`
	Level                     Level     `json:"consent_level"`
	DataRetentionDays         int       `json:"data_retention_days"`
	CollectiveLearningEnabled bool      `json:"collective_learning_enabled"`
	AnonymizationRequired     bool      `json:"anonymization_required"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// DefaultPreference is the implicit configuration for sessions without a
// stored row.
func DefaultPreference(sessionID string) *Preference {
	return &Preference{
		SessionID:             sessionID,
		Level:                 LevelPrivate,
		DataRetentionDays:     DefaultRetentionDays,
		AnonymizationRequired: true,
	}
}

// Repository defines storage operations for consent preferences.
type Repository interface {
	// Upsert stores the preference, replacing any existing row for the session.
	Upsert(ctx context.Context, preference *Preference) error
	// FindBySessionID returns the stored preference, or nil when the session
	// never registered one.
	FindBySessionID(ctx context.Context, sessionID string) (*Preference, error)
}
