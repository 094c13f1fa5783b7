package archive

import (
	"context"
	"time"

	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
)

// ActiveSessionWindow bounds the "active sessions" statistic.
const ActiveSessionWindow = 7 * 24 * time.Hour

// TopThemeLimit caps the top-themes aggregate.
const TopThemeLimit = 5

// NetworkStats is the archive-wide aggregate served to operators and
// exported as gauges.
type NetworkStats struct {
	TotalConversations      int64            `json:"total_conversations"`
	ConsentBreakdown        map[string]int64 `json:"consent_breakdown"`
	ActiveSessions          int64            `json:"active_sessions_7_days"`
	WisdomPatternsCount     int64            `json:"wisdom_patterns_count"`
	CollectiveInsightsCount int64            `json:"collective_insights_count"`
	TopThemes               []ThemeFrequency `json:"top_themes"`
}

// NetworkStats assembles the current archive aggregate.
func (s *Service) NetworkStats(ctx context.Context) (*NetworkStats, error) {
	total, err := s.records.Count(ctx)
	if err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to count conversation records", "73f0a5d8-2c96-4e41-b8d3-9a1e6f4c0b27")
	}

	breakdown, err := s.records.CountByConsentLevel(ctx)
	if err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to aggregate consent breakdown", "0c6e3b91-8d54-4f07-a2e6-5b9f1d8c4a70")
	}

	active, err := s.records.CountActiveSessionsSince(ctx, time.Now().UTC().Add(-ActiveSessionWindow))
	if err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to count active sessions", "b45d8e20-1f73-4c69-90a5-3e7c2f6d1b84")
	}

	patternCount, err := s.patterns.Count(ctx)
	if err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to count wisdom patterns", "69a2c7f4-0b58-4d13-8e9c-2d5a1f7e0c46")
	}

	insightCount, err := s.insights.Count(ctx)
	if err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to count collective insights", "8f1b6d35-4a29-4e80-b7f2-0c9e5d3a6b18")
	}

	topThemes, err := s.patterns.TopThemes(ctx, TopThemeLimit)
	if err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to aggregate top themes", "37d9e0c6-5b82-4f54-a1d8-6e4b9c2f7a03")
	}

	return &NetworkStats{
		TotalConversations:      total,
		ConsentBreakdown:        breakdown,
		ActiveSessions:          active,
		WisdomPatternsCount:     patternCount,
		CollectiveInsightsCount: insightCount,
		TopThemes:               topThemes,
	}, nil
}
