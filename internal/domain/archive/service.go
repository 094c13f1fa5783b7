package archive

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/chaosweaver007/Genesis/internal/domain/consent"
	"github.com/chaosweaver007/Genesis/internal/domain/query"
	"github.com/chaosweaver007/Genesis/internal/utils/idgen"
	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
)

// DefaultModeLabel is recorded for persona tags without a mapped mode label.
const DefaultModeLabel = "Default"

// personaModeLabels maps chat persona tags to the mode label stored on the
// record. The commune endpoint logs under the "collective" tag, which has no
// mapping and therefore records DefaultModeLabel.
var personaModeLabels = map[string]string{
	"steven": "Chaos Weaver",
	"sarah":  "Divine Feminine",
	"both":   "Divine Union",
}

// Service orchestrates the conversation archive: the ingest pipeline, wisdom
// aggregation, insight synthesis, retention sweeping, and network statistics.
type Service struct {
	records  ConversationRecordRepository
	patterns WisdomPatternRepository
	insights CollectiveInsightRepository
	consents *consent.Service
	log      zerolog.Logger
}

// NewService constructs a Service with required dependencies.
func NewService(
	records ConversationRecordRepository,
	patterns WisdomPatternRepository,
	insights CollectiveInsightRepository,
	consents *consent.Service,
	log zerolog.Logger,
) *Service {
	return &Service{
		records:  records,
		patterns: patterns,
		insights: insights,
		consents: consents,
		log:      log,
	}
}

// StoreConversationInput carries one exchange into the ingest pipeline.
type StoreConversationInput struct {
	SessionID    string
	UserMessage  string
	AIResponse   string
	Persona      string
	Mode         string
	ConsentLevel consent.Level
}

// StoreConversation runs the ingest pipeline: hash both texts, add the
// anonymized pair hash and derived analysis as the consent level permits,
// persist the record, then feed the wisdom aggregate. There is no rollback;
// aggregation failures after the record write are logged and the stored
// record is returned as-is.
func (s *Service) StoreConversation(ctx context.Context, input StoreConversationInput) (*ConversationRecord, error) {
	if input.SessionID == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"session id is required", nil, "9e2c5f80-4d17-4b3a-a6c9-1f7d8e0b2a54")
	}

	level, ok := consent.ParseLevel(string(input.ConsentLevel))
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"unknown consent level", nil, "3f8a1d62-b7e0-4c95-8d24-6a0c9e5f7b13")
	}

	publicID, err := idgen.GenerateSecureID(idgen.PrefixConversation, idgen.DefaultIDLength)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"failed to generate record id", err, "7c4e9b25-0a83-4f16-b5d7-2e8f1a6c0d49")
	}

	record := &ConversationRecord{
		PublicID:        publicID,
		SessionID:       input.SessionID,
		Timestamp:       time.Now().UTC(),
		UserMessageHash: HashContent(input.UserMessage),
		AIResponseHash:  HashContent(input.AIResponse),
		Persona:         input.Persona,
		Mode:            input.Mode,
		ConsentLevel:    level,
	}

	if level.AllowsAnonymizedHash() {
		pairHash := HashAnonymizedPair(Anonymize(input.UserMessage), Anonymize(input.AIResponse))
		record.AnonymizedHash = &pairHash
	}

	if level.AllowsCollectiveLearning() {
		record.ExtractedPatterns = ExtractPatterns(input.UserMessage, input.AIResponse)
		record.WisdomContribution = ScoreContribution(record.ExtractedPatterns, input.AIResponse)
	}

	if err := s.records.Create(ctx, record); err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to store conversation record", "b61d8f3a-29c7-4e50-a4b8-5d2e7f0c9a16")
	}

	if level.AllowsCollectiveLearning() {
		if err := s.updateWisdomPatterns(ctx, record.ExtractedPatterns.Themes); err != nil {
			s.log.Warn().Err(err).Str("record_id", record.PublicID).Msg("wisdom pattern update failed")
		} else if _, err := s.SynthesizeInsights(ctx); err != nil {
			s.log.Warn().Err(err).Str("record_id", record.PublicID).Msg("insight synthesis failed")
		}
	}

	return record, nil
}

// StoreInteraction is the chat-layer entry point: it resolves the session's
// stored consent level, maps the persona tag to its recorded mode label, and
// runs the ingest pipeline.
func (s *Service) StoreInteraction(ctx context.Context, sessionID, personaTag, userMessage, aiResponse string) (*ConversationRecord, error) {
	preference, err := s.consents.Resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	mode, ok := personaModeLabels[personaTag]
	if !ok {
		mode = DefaultModeLabel
	}

	return s.StoreConversation(ctx, StoreConversationInput{
		SessionID:    sessionID,
		UserMessage:  userMessage,
		AIResponse:   aiResponse,
		Persona:      personaTag,
		Mode:         mode,
		ConsentLevel: preference.Level,
	})
}

// updateWisdomPatterns bumps the frequency counter per observed theme,
// creating missing patterns with the initial effectiveness score and an empty
// example list.
func (s *Service) updateWisdomPatterns(ctx context.Context, themes []string) error {
	for _, theme := range themes {
		existing, err := s.patterns.FindByTheme(ctx, theme)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := s.patterns.IncrementFrequency(ctx, existing.ID); err != nil {
				return err
			}
			continue
		}

		publicID, err := idgen.GenerateSecureID(idgen.PrefixPattern, idgen.DefaultIDLength)
		if err != nil {
			return err
		}
		pattern := &WisdomPattern{
			PublicID:           publicID,
			PatternType:        PatternTypeTheme,
			ThemeCategory:      theme,
			Frequency:          1,
			EffectivenessScore: InitialEffectivenessScore,
			Examples:           []string{},
		}
		if err := s.patterns.Create(ctx, pattern); err != nil {
			return err
		}
	}
	return nil
}

// SynthesizeInsights scans high-value wisdom patterns and creates a pending
// insight for each theme that does not already have one. Returns the number
// of insights created.
func (s *Service) SynthesizeInsights(ctx context.Context) (int, error) {
	candidates, err := s.patterns.FindHighValue(ctx, InsightFrequencyThreshold, InsightEffectivenessThreshold)
	if err != nil {
		return 0, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to scan wisdom patterns", "e05a7c31-8f49-4d26-9b0e-3c6d1f8a5b72")
	}

	created := 0
	for _, pattern := range candidates {
		exists, err := s.insights.TitleExistsContaining(ctx, pattern.ThemeCategory)
		if err != nil {
			return created, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
				"failed to check for existing insight", "1b9f4e68-d27a-4c03-85f1-7a0e2d9c4b36")
		}
		if exists {
			continue
		}

		publicID, err := idgen.GenerateSecureID(idgen.PrefixInsight, idgen.DefaultIDLength)
		if err != nil {
			return created, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
				"failed to generate insight id", err, "6d3b0a95-42e8-4f71-bc5a-9e1f8c2d7a60")
		}

		insight := &CollectiveInsight{
			PublicID:         publicID,
			Title:            InsightTitleForTheme(pattern.ThemeCategory),
			Description:      InsightDescriptionForPattern(pattern.Frequency),
			SupportingThemes: []string{pattern.ThemeCategory},
			ConfidenceScore:  pattern.EffectivenessScore,
			ImpactArea:       ImpactAreaCommunity,
			ReviewStatus:     ReviewStatusPending,
		}
		if err := s.insights.Create(ctx, insight); err != nil {
			return created, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
				"failed to create collective insight", "a84c2f07-5b19-4e63-8d0f-4c7a9b1e6d25")
		}
		created++
		s.log.Info().
			Str("insight_id", publicID).
			Str("theme", pattern.ThemeCategory).
			Int("frequency", pattern.Frequency).
			Msg("collective insight synthesized")
	}
	return created, nil
}

// WisdomPatterns lists stored patterns, optionally filtered by theme.
func (s *Service) WisdomPatterns(ctx context.Context, filter PatternFilter, pagination *query.Pagination) ([]*WisdomPattern, error) {
	patterns, err := s.patterns.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to list wisdom patterns", "f27e0b84-6c15-4a39-9d62-0b5f8e3a1c47")
	}
	return patterns, nil
}

// CollectiveInsights lists insights, optionally filtered by review status.
func (s *Service) CollectiveInsights(ctx context.Context, filter InsightFilter, pagination *query.Pagination) ([]*CollectiveInsight, error) {
	insights, err := s.insights.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to list collective insights", "48c6d1f9-0e72-4b58-a3c4-6f9a2e7b0d81")
	}
	return insights, nil
}

// ApproveInsight promotes an insight to approved. Approving an already
// approved insight is a no-op.
func (s *Service) ApproveInsight(ctx context.Context, publicID string) (*CollectiveInsight, error) {
	insight, err := s.insights.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to load collective insight", "2a7f9c50-1d38-4e64-b90a-8c3e5f1d6b24")
	}
	if insight == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"collective insight not found", nil, "90b3e6a2-7f41-4c85-8a1d-5e0c9f2b7d38")
	}

	if insight.ReviewStatus != ReviewStatusApproved {
		if err := s.insights.UpdateReviewStatus(ctx, publicID, ReviewStatusApproved); err != nil {
			return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
				"failed to approve collective insight", "c58d1a73-9b06-4f27-8e4b-0a6f3c9d2e51")
		}
		insight.ReviewStatus = ReviewStatusApproved
	}
	return insight, nil
}

// SweepExpired deletes conversation records older than their session's
// retention window, using the default retention for sessions without a stored
// preference. Returns the number of records deleted.
func (s *Service) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	candidates, err := s.records.ListExpirationCandidates(ctx)
	if err != nil {
		return 0, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to list expiration candidates", "d19b4f86-3e50-4a72-bc08-7f2d6a9e0c35")
	}

	expired := make([]string, 0)
	for _, candidate := range candidates {
		retentionDays := consent.DefaultRetentionDays
		if candidate.RetentionDays != nil {
			retentionDays = *candidate.RetentionDays
		}
		cutoff := now.Add(-time.Duration(retentionDays) * 24 * time.Hour)
		if candidate.Timestamp.Before(cutoff) {
			expired = append(expired, candidate.PublicID)
		}
	}
	if len(expired) == 0 {
		return 0, nil
	}

	deleted, err := s.records.DeleteByPublicIDs(ctx, expired)
	if err != nil {
		return 0, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerDomain, err,
			"failed to delete expired records", "5e8c2d41-6a97-4b30-9f5e-1c4a7d0b8e62")
	}

	s.log.Info().Int64("deleted", deleted).Msg("retention sweep completed")
	return deleted, nil
}
