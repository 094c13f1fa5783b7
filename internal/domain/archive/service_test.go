package archive_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/domain/consent"
	"github.com/chaosweaver007/Genesis/internal/domain/query"
)

// ===============================================
// In-memory repositories
// ===============================================

type mockRecordRepository struct {
	records   []*archive.ConversationRecord
	retention map[string]int
	nextID    uint
}

func (m *mockRecordRepository) Create(ctx context.Context, record *archive.ConversationRecord) error {
	m.nextID++
	record.ID = m.nextID
	copied := *record
	m.records = append(m.records, &copied)
	return nil
}

func (m *mockRecordRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.records)), nil
}

func (m *mockRecordRepository) CountByConsentLevel(ctx context.Context) (map[string]int64, error) {
	breakdown := make(map[string]int64)
	for _, record := range m.records {
		breakdown[string(record.ConsentLevel)]++
	}
	return breakdown, nil
}

func (m *mockRecordRepository) CountActiveSessionsSince(ctx context.Context, since time.Time) (int64, error) {
	sessions := make(map[string]bool)
	for _, record := range m.records {
		if record.Timestamp.After(since) {
			sessions[record.SessionID] = true
		}
	}
	return int64(len(sessions)), nil
}

func (m *mockRecordRepository) ListExpirationCandidates(ctx context.Context) ([]archive.ExpirationCandidate, error) {
	candidates := make([]archive.ExpirationCandidate, 0, len(m.records))
	for _, record := range m.records {
		candidate := archive.ExpirationCandidate{
			PublicID:  record.PublicID,
			SessionID: record.SessionID,
			Timestamp: record.Timestamp,
		}
		if retention, ok := m.retention[record.SessionID]; ok {
			days := retention
			candidate.RetentionDays = &days
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

func (m *mockRecordRepository) DeleteByPublicIDs(ctx context.Context, publicIDs []string) (int64, error) {
	doomed := make(map[string]bool, len(publicIDs))
	for _, id := range publicIDs {
		doomed[id] = true
	}
	kept := m.records[:0]
	var deleted int64
	for _, record := range m.records {
		if doomed[record.PublicID] {
			deleted++
			continue
		}
		kept = append(kept, record)
	}
	m.records = kept
	return deleted, nil
}

type mockPatternRepository struct {
	patterns []*archive.WisdomPattern
	nextID   uint
}

func (m *mockPatternRepository) Create(ctx context.Context, pattern *archive.WisdomPattern) error {
	m.nextID++
	pattern.ID = m.nextID
	copied := *pattern
	m.patterns = append(m.patterns, &copied)
	return nil
}

func (m *mockPatternRepository) FindByTheme(ctx context.Context, themeCategory string) (*archive.WisdomPattern, error) {
	for _, pattern := range m.patterns {
		if pattern.ThemeCategory == themeCategory {
			copied := *pattern
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockPatternRepository) IncrementFrequency(ctx context.Context, id uint) error {
	for _, pattern := range m.patterns {
		if pattern.ID == id {
			pattern.Frequency++
			pattern.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return nil
}

func (m *mockPatternRepository) FindByFilter(ctx context.Context, filter archive.PatternFilter, pagination *query.Pagination) ([]*archive.WisdomPattern, error) {
	result := make([]*archive.WisdomPattern, 0)
	for _, pattern := range m.patterns {
		if filter.ThemeCategory != nil && pattern.ThemeCategory != *filter.ThemeCategory {
			continue
		}
		copied := *pattern
		result = append(result, &copied)
	}
	return result, nil
}

func (m *mockPatternRepository) FindHighValue(ctx context.Context, minFrequency int, minEffectiveness float64) ([]*archive.WisdomPattern, error) {
	result := make([]*archive.WisdomPattern, 0)
	for _, pattern := range m.patterns {
		if pattern.Frequency >= minFrequency && pattern.EffectivenessScore > minEffectiveness {
			copied := *pattern
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockPatternRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.patterns)), nil
}

func (m *mockPatternRepository) TopThemes(ctx context.Context, limit int) ([]archive.ThemeFrequency, error) {
	top := make([]archive.ThemeFrequency, 0, limit)
	for _, pattern := range m.patterns {
		top = append(top, archive.ThemeFrequency{ThemeCategory: pattern.ThemeCategory, Frequency: int64(pattern.Frequency)})
		if len(top) == limit {
			break
		}
	}
	return top, nil
}

type mockInsightRepository struct {
	insights []*archive.CollectiveInsight
	nextID   uint
}

func (m *mockInsightRepository) Create(ctx context.Context, insight *archive.CollectiveInsight) error {
	m.nextID++
	insight.ID = m.nextID
	copied := *insight
	m.insights = append(m.insights, &copied)
	return nil
}

// titleContains mirrors SQL LIKE semantics: case-insensitive, with `_` in the
// fragment matching any single character.
func titleContains(title, fragment string) bool {
	pattern := regexp.QuoteMeta(strings.ToLower(fragment))
	pattern = strings.ReplaceAll(pattern, "_", ".")
	matched, _ := regexp.MatchString(pattern, strings.ToLower(title))
	return matched
}

func (m *mockInsightRepository) TitleExistsContaining(ctx context.Context, fragment string) (bool, error) {
	for _, insight := range m.insights {
		if titleContains(insight.Title, fragment) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockInsightRepository) FindByFilter(ctx context.Context, filter archive.InsightFilter, pagination *query.Pagination) ([]*archive.CollectiveInsight, error) {
	result := make([]*archive.CollectiveInsight, 0)
	for _, insight := range m.insights {
		if filter.ReviewStatus != nil && insight.ReviewStatus != *filter.ReviewStatus {
			continue
		}
		copied := *insight
		result = append(result, &copied)
	}
	return result, nil
}

func (m *mockInsightRepository) FindByPublicID(ctx context.Context, publicID string) (*archive.CollectiveInsight, error) {
	for _, insight := range m.insights {
		if insight.PublicID == publicID {
			copied := *insight
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockInsightRepository) UpdateReviewStatus(ctx context.Context, publicID string, status archive.ReviewStatus) error {
	for _, insight := range m.insights {
		if insight.PublicID == publicID {
			insight.ReviewStatus = status
		}
	}
	return nil
}

func (m *mockInsightRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.insights)), nil
}

type mockConsentRepository struct {
	prefs map[string]*consent.Preference
}

func (m *mockConsentRepository) Upsert(ctx context.Context, preference *consent.Preference) error {
	copied := *preference
	m.prefs[preference.SessionID] = &copied
	return nil
}

func (m *mockConsentRepository) FindBySessionID(ctx context.Context, sessionID string) (*consent.Preference, error) {
	preference, ok := m.prefs[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *preference
	return &copied, nil
}

// ===============================================
// Fixture
// ===============================================

type fixture struct {
	service  *archive.Service
	records  *mockRecordRepository
	patterns *mockPatternRepository
	insights *mockInsightRepository
	consents *consent.Service
}

func newFixture() *fixture {
	records := &mockRecordRepository{retention: make(map[string]int)}
	patterns := &mockPatternRepository{}
	insights := &mockInsightRepository{}
	consents := consent.NewService(&mockConsentRepository{prefs: make(map[string]*consent.Preference)})
	return &fixture{
		service:  archive.NewService(records, patterns, insights, consents, zerolog.Nop()),
		records:  records,
		patterns: patterns,
		insights: insights,
		consents: consents,
	}
}

// ===============================================
// Ingest pipeline
// ===============================================

func TestStoreConversationPrivateKeepsOnlyHashes(t *testing.T) {
	f := newFixture()

	record, err := f.service.StoreConversation(context.Background(), archive.StoreConversationInput{
		SessionID:    "session-1",
		UserMessage:  "I am struggling with my healing journey, email me at sam@example.com",
		AIResponse:   "Consider what your healing asks of you.",
		Persona:      "sarah",
		Mode:         "Divine Feminine",
		ConsentLevel: consent.LevelPrivate,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(record.PublicID, "conv_"))
	assert.Len(t, record.UserMessageHash, 64)
	assert.Len(t, record.AIResponseHash, 64)
	assert.Nil(t, record.AnonymizedHash)
	assert.Nil(t, record.ExtractedPatterns)
	assert.Nil(t, record.WisdomContribution)
	assert.Empty(t, f.patterns.patterns)
}

func TestStoreConversationAnonymousAddsPairHash(t *testing.T) {
	f := newFixture()

	record, err := f.service.StoreConversation(context.Background(), archive.StoreConversationInput{
		SessionID:    "session-1",
		UserMessage:  "my friend Jane Doe hurt me",
		AIResponse:   "That pain deserves gentle attention.",
		ConsentLevel: consent.LevelAnonymous,
	})
	require.NoError(t, err)

	require.NotNil(t, record.AnonymizedHash)
	expected := archive.HashAnonymizedPair(
		archive.Anonymize("my friend Jane Doe hurt me"),
		archive.Anonymize("That pain deserves gentle attention."),
	)
	assert.Equal(t, expected, *record.AnonymizedHash)
	assert.Nil(t, record.ExtractedPatterns)
	assert.Empty(t, f.patterns.patterns)
}

func TestStoreConversationCollectivePopulatesAnalysis(t *testing.T) {
	f := newFixture()

	record, err := f.service.StoreConversation(context.Background(), archive.StoreConversationInput{
		SessionID:    "session-1",
		UserMessage:  "I want healing in my relationship",
		AIResponse:   "Reflect on what you already know.",
		ConsentLevel: consent.LevelCollective,
	})
	require.NoError(t, err)

	require.NotNil(t, record.AnonymizedHash)
	require.NotNil(t, record.ExtractedPatterns)
	require.NotNil(t, record.WisdomContribution)
	assert.ElementsMatch(t, []string{"relationships", "healing"}, record.ExtractedPatterns.Themes)

	// Each observed theme produced a pattern with frequency 1.
	require.Len(t, f.patterns.patterns, 2)
	for _, pattern := range f.patterns.patterns {
		assert.Equal(t, 1, pattern.Frequency)
		assert.Equal(t, archive.InitialEffectivenessScore, pattern.EffectivenessScore)
		assert.Equal(t, archive.PatternTypeTheme, pattern.PatternType)
		assert.Empty(t, pattern.Examples)
		assert.True(t, strings.HasPrefix(pattern.PublicID, "pat_"))
	}
}

func TestStoreConversationIncrementsExistingPattern(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.service.StoreConversation(ctx, archive.StoreConversationInput{
			SessionID:    "session-1",
			UserMessage:  "healing again",
			AIResponse:   "ok",
			ConsentLevel: consent.LevelCollective,
		})
		require.NoError(t, err)
	}

	require.Len(t, f.patterns.patterns, 1)
	assert.Equal(t, "healing", f.patterns.patterns[0].ThemeCategory)
	assert.Equal(t, 3, f.patterns.patterns[0].Frequency)
}

func TestStoreConversationDefaultsEmptyConsentToPrivate(t *testing.T) {
	f := newFixture()

	record, err := f.service.StoreConversation(context.Background(), archive.StoreConversationInput{
		SessionID:   "session-1",
		UserMessage: "hello",
		AIResponse:  "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, consent.LevelPrivate, record.ConsentLevel)
}

func TestStoreConversationRejectsMissingSession(t *testing.T) {
	f := newFixture()

	_, err := f.service.StoreConversation(context.Background(), archive.StoreConversationInput{
		UserMessage: "hello",
		AIResponse:  "hi",
	})
	assert.Error(t, err)
}

// ===============================================
// StoreInteraction wrapper
// ===============================================

func TestStoreInteractionResolvesConsentAndMode(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.consents.Set(ctx, &consent.Preference{
		SessionID: "session-1",
		Level:     consent.LevelCollective,
	})
	require.NoError(t, err)

	record, err := f.service.StoreInteraction(ctx, "session-1", "steven", "what is my purpose", "a reply")
	require.NoError(t, err)
	assert.Equal(t, "steven", record.Persona)
	assert.Equal(t, "Chaos Weaver", record.Mode)
	assert.Equal(t, consent.LevelCollective, record.ConsentLevel)
	assert.NotNil(t, record.ExtractedPatterns)
}

func TestStoreInteractionDefaultsToPrivate(t *testing.T) {
	f := newFixture()

	record, err := f.service.StoreInteraction(context.Background(), "fresh", "sarah", "hello", "hi")
	require.NoError(t, err)
	assert.Equal(t, consent.LevelPrivate, record.ConsentLevel)
	assert.Equal(t, "Divine Feminine", record.Mode)
	assert.Nil(t, record.ExtractedPatterns)
}

func TestStoreInteractionUnmappedPersonaRecordsDefaultMode(t *testing.T) {
	f := newFixture()

	record, err := f.service.StoreInteraction(context.Background(), "session-1", "collective", "hello", "hi")
	require.NoError(t, err)
	assert.Equal(t, "collective", record.Persona)
	assert.Equal(t, archive.DefaultModeLabel, record.Mode)
}

// ===============================================
// Insight synthesis
// ===============================================

func TestSynthesizeInsightsThresholdAndDedup(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.patterns.patterns = []*archive.WisdomPattern{
		{ID: 1, PublicID: "pat_aaaaaaaaaaaaaaaa", PatternType: archive.PatternTypeTheme,
			ThemeCategory: "personal_growth", Frequency: 5, EffectivenessScore: 0.75},
		{ID: 2, PublicID: "pat_bbbbbbbbbbbbbbbb", PatternType: archive.PatternTypeTheme,
			ThemeCategory: "healing", Frequency: 4, EffectivenessScore: 0.9},
		{ID: 3, PublicID: "pat_cccccccccccccccc", PatternType: archive.PatternTypeTheme,
			ThemeCategory: "creativity", Frequency: 9, EffectivenessScore: 0.5},
	}

	created, err := f.service.SynthesizeInsights(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	require.Len(t, f.insights.insights, 1)
	insight := f.insights.insights[0]
	assert.Equal(t, "Collective Wisdom: Personal Growth", insight.Title)
	assert.Equal(t, "Based on 5 conversations, this theme shows high transformation potential.", insight.Description)
	assert.Equal(t, []string{"personal_growth"}, insight.SupportingThemes)
	assert.Equal(t, 0.75, insight.ConfidenceScore)
	assert.Equal(t, archive.ImpactAreaCommunity, insight.ImpactArea)
	assert.Equal(t, archive.ReviewStatusPending, insight.ReviewStatus)
	assert.True(t, strings.HasPrefix(insight.PublicID, "ins_"))

	// A repeat scan with unchanged patterns creates nothing new.
	created, err = f.service.SynthesizeInsights(ctx)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Len(t, f.insights.insights, 1)
}

// Freshly created patterns carry the initial effectiveness score, which never
// clears the strict threshold, so organic traffic alone synthesizes nothing.
func TestSynthesizeInsightsInitialScoreNeverQualifies(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := f.service.StoreConversation(ctx, archive.StoreConversationInput{
			SessionID:    "session-1",
			UserMessage:  "healing journey",
			AIResponse:   "ok",
			ConsentLevel: consent.LevelCollective,
		})
		require.NoError(t, err)
	}

	require.Len(t, f.patterns.patterns, 1)
	assert.Equal(t, 6, f.patterns.patterns[0].Frequency)
	assert.Empty(t, f.insights.insights)
}

func TestApproveInsight(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.insights.insights = []*archive.CollectiveInsight{
		{ID: 1, PublicID: "ins_aaaaaaaaaaaaaaaa", Title: "Collective Wisdom: Healing",
			ReviewStatus: archive.ReviewStatusPending},
	}

	insight, err := f.service.ApproveInsight(ctx, "ins_aaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	assert.Equal(t, archive.ReviewStatusApproved, insight.ReviewStatus)
	assert.Equal(t, archive.ReviewStatusApproved, f.insights.insights[0].ReviewStatus)

	_, err = f.service.ApproveInsight(ctx, "ins_missing")
	assert.Error(t, err)
}

// ===============================================
// Retention sweep
// ===============================================

func TestSweepExpiredHonorsPerSessionRetention(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := time.Now().UTC()

	f.records.retention["session-short"] = 7
	f.records.records = []*archive.ConversationRecord{
		{PublicID: "conv_a", SessionID: "session-short", Timestamp: now.Add(-8 * 24 * time.Hour)},
		{PublicID: "conv_b", SessionID: "session-short", Timestamp: now.Add(-6 * 24 * time.Hour)},
		{PublicID: "conv_c", SessionID: "session-default", Timestamp: now.Add(-31 * 24 * time.Hour)},
		{PublicID: "conv_d", SessionID: "session-default", Timestamp: now.Add(-29 * 24 * time.Hour)},
	}

	deleted, err := f.service.SweepExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining := make([]string, 0)
	for _, record := range f.records.records {
		remaining = append(remaining, record.PublicID)
	}
	assert.ElementsMatch(t, []string{"conv_b", "conv_d"}, remaining)
}

func TestSweepExpiredNothingToDelete(t *testing.T) {
	f := newFixture()

	deleted, err := f.service.SweepExpired(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

// ===============================================
// Network statistics
// ===============================================

func TestNetworkStats(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := time.Now().UTC()

	f.records.records = []*archive.ConversationRecord{
		{PublicID: "conv_a", SessionID: "s1", Timestamp: now.Add(-time.Hour), ConsentLevel: consent.LevelPrivate},
		{PublicID: "conv_b", SessionID: "s1", Timestamp: now.Add(-2 * time.Hour), ConsentLevel: consent.LevelCollective},
		{PublicID: "conv_c", SessionID: "s2", Timestamp: now.Add(-10 * 24 * time.Hour), ConsentLevel: consent.LevelAnonymous},
	}
	f.patterns.patterns = []*archive.WisdomPattern{
		{ID: 1, ThemeCategory: "healing", Frequency: 4},
	}

	stats, err := f.service.NetworkStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalConversations)
	assert.Equal(t, int64(1), stats.ConsentBreakdown["collective"])
	assert.Equal(t, int64(1), stats.ActiveSessions)
	assert.Equal(t, int64(1), stats.WisdomPatternsCount)
	assert.Zero(t, stats.CollectiveInsightsCount)
	require.Len(t, stats.TopThemes, 1)
	assert.Equal(t, "healing", stats.TopThemes[0].ThemeCategory)
}
