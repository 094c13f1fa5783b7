package archive

import (
	"context"
	"time"

	"github.com/chaosweaver007/Genesis/internal/domain/query"
)

// PatternTypeTheme is the only pattern type currently produced; the column
// exists so future pattern families can share the table.
const PatternTypeTheme = "theme"

// InitialEffectivenessScore seeds every new pattern. No code path recomputes
// it afterwards; see the insight-synthesis thresholds below.
const InitialEffectivenessScore = 0.5

// WisdomPattern aggregates how often a theme appears across collective-consent
// conversations. Never deleted; frequency only grows.
type WisdomPattern struct {
	ID                 uint      `json:"-"`
	PublicID           string    `json:"id"`
	PatternType        string    `json:"pattern_type"`
	ThemeCategory      string    `json:"theme_category"`
	Frequency          int       `json:"frequency"`
	EffectivenessScore float64   `json:"effectiveness_score"`
	Examples           []string  `json:"anonymized_examples"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"last_updated"`
}

// PatternFilter defines criteria for querying wisdom patterns.
type PatternFilter struct {
	ThemeCategory *string
}

// ThemeFrequency is one row of the top-themes aggregate.
type ThemeFrequency struct {
	ThemeCategory string `json:"theme"`
	Frequency     int64  `json:"frequency"`
}

// WisdomPatternRepository defines the data access interface for wisdom
// patterns.
type WisdomPatternRepository interface {
	Create(ctx context.Context, pattern *WisdomPattern) error
	// FindByTheme returns the pattern for a theme, or nil when none exists.
	FindByTheme(ctx context.Context, themeCategory string) (*WisdomPattern, error)
	IncrementFrequency(ctx context.Context, id uint) error

	// FindByFilter orders by frequency, then effectiveness, both descending.
	FindByFilter(ctx context.Context, filter PatternFilter, pagination *query.Pagination) ([]*WisdomPattern, error)
	// FindHighValue returns patterns with frequency >= minFrequency and
	// effectiveness strictly above minEffectiveness.
	FindHighValue(ctx context.Context, minFrequency int, minEffectiveness float64) ([]*WisdomPattern, error)
	Count(ctx context.Context) (int64, error)
	TopThemes(ctx context.Context, limit int) ([]ThemeFrequency, error)
}
