package archive

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chaosweaver007/Genesis/internal/domain/query"
)

// ReviewStatus tracks the ethical-review lifecycle of an insight.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
)

// ImpactAreaCommunity is the only impact label synthesized insights carry.
const ImpactAreaCommunity = "community"

// Synthesis thresholds. Effectiveness starts at InitialEffectivenessScore and
// is never recomputed, so the strict > comparison only passes for patterns
// whose score was raised out of band.
const (
	InsightFrequencyThreshold     = 5
	InsightEffectivenessThreshold = 0.7
)

// CollectiveInsight is a synthesized assertion that a theme crossed the
// frequency/effectiveness thresholds.
type CollectiveInsight struct {
	ID               uint         `json:"-"`
	PublicID         string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	SupportingThemes []string     `json:"supporting_themes"`
	ConfidenceScore  float64      `json:"confidence_score"`
	ImpactArea       string       `json:"impact_area"`
	ReviewStatus     ReviewStatus `json:"ethical_review_status"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"-"`
}

// InsightFilter defines criteria for querying collective insights.
type InsightFilter struct {
	ReviewStatus *ReviewStatus
}

// CollectiveInsightRepository defines the data access interface for
// collective insights.
type CollectiveInsightRepository interface {
	Create(ctx context.Context, insight *CollectiveInsight) error
	// TitleExistsContaining is the synthesis dedup check: SQL LIKE
	// containment, case-insensitive, with `_` in the fragment matching any
	// single character. A theme key like "personal_growth" therefore matches
	// the title words "Personal Growth".
	TitleExistsContaining(ctx context.Context, fragment string) (bool, error)
	// FindByFilter orders by confidence, then creation time, both descending.
	FindByFilter(ctx context.Context, filter InsightFilter, pagination *query.Pagination) ([]*CollectiveInsight, error)
	// FindByPublicID returns the insight, or nil when none exists.
	FindByPublicID(ctx context.Context, publicID string) (*CollectiveInsight, error)
	UpdateReviewStatus(ctx context.Context, publicID string, status ReviewStatus) error
	Count(ctx context.Context) (int64, error)
}

// InsightTitleForTheme renders the canonical insight title for a theme key,
// e.g. "personal_growth" becomes "Collective Wisdom: Personal Growth".
func InsightTitleForTheme(themeCategory string) string {
	words := strings.Split(themeCategory, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return "Collective Wisdom: " + strings.Join(words, " ")
}

// InsightDescriptionForPattern renders the canonical insight description.
func InsightDescriptionForPattern(frequency int) string {
	return fmt.Sprintf("Based on %d conversations, this theme shows high transformation potential.", frequency)
}
