package archiverepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/dbschema"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/transaction"
	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
)

// ConversationRecordGormRepository implements archive.ConversationRecordRepository using GORM
type ConversationRecordGormRepository struct {
	db *transaction.Database
}

var _ archive.ConversationRecordRepository = (*ConversationRecordGormRepository)(nil)

// NewConversationRecordGormRepository creates a new conversation record repository
func NewConversationRecordGormRepository(db *transaction.Database) archive.ConversationRecordRepository {
	return &ConversationRecordGormRepository{db: db}
}

// Create implements archive.ConversationRecordRepository.
func (repo *ConversationRecordGormRepository) Create(ctx context.Context, record *archive.ConversationRecord) error {
	model := dbschema.NewSchemaConversationRecord(record)
	if err := repo.getDB(ctx).Create(model).Error; err != nil {
		return platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to create conversation record", "37307f43-749c-4b13-8c8a-4238b3ca149b")
	}
	// Update the domain object with generated ID and timestamps
	record.ID = model.ID
	record.CreatedAt = model.CreatedAt
	record.UpdatedAt = model.UpdatedAt
	return nil
}

// Count implements archive.ConversationRecordRepository.
func (repo *ConversationRecordGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.getDB(ctx).Model(&dbschema.ConversationRecord{}).Count(&count).Error; err != nil {
		return 0, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to count conversation records", "a06b303a-96df-4ffc-859f-b8fd7ddc6916")
	}
	return count, nil
}

// CountByConsentLevel implements archive.ConversationRecordRepository.
func (repo *ConversationRecordGormRepository) CountByConsentLevel(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		ConsentLevel string
		Total        int64
	}
	if err := repo.getDB(ctx).
		Model(&dbschema.ConversationRecord{}).
		Select("consent_level, COUNT(*) AS total").
		Group("consent_level").
		Scan(&rows).Error; err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to count conversation records by consent level", "1ef07b29-9b72-48ad-ace7-e1b18b0c376e")
	}

	breakdown := make(map[string]int64, len(rows))
	for _, row := range rows {
		breakdown[row.ConsentLevel] = row.Total
	}
	return breakdown, nil
}

// CountActiveSessionsSince implements archive.ConversationRecordRepository.
func (repo *ConversationRecordGormRepository) CountActiveSessionsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := repo.getDB(ctx).
		Model(&dbschema.ConversationRecord{}).
		Where("timestamp > ?", since).
		Distinct("session_id").
		Count(&count).Error; err != nil {
		return 0, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to count active sessions", "c31f9a90-02c0-45fb-8173-43d0a5305535")
	}
	return count, nil
}

// ListExpirationCandidates implements archive.ConversationRecordRepository.
func (repo *ConversationRecordGormRepository) ListExpirationCandidates(ctx context.Context) ([]archive.ExpirationCandidate, error) {
	db := repo.getDB(ctx)

	var rows []struct {
		PublicID      string
		SessionID     string
		Timestamp     time.Time
		RetentionDays *int
	}
	// The joined table name goes through the naming strategy so the schema
	// prefix matches whichever driver is active.
	consentTable := db.NamingStrategy.TableName("ConsentPreference")
	if err := db.
		Model(&dbschema.ConversationRecord{}).
		Select("conversation_records.public_id, conversation_records.session_id, conversation_records.timestamp, consent_preferences.data_retention_days AS retention_days").
		Joins("LEFT JOIN " + consentTable + " ON consent_preferences.session_id = conversation_records.session_id").
		Scan(&rows).Error; err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to list expiration candidates", "36ed25bd-a2e5-4e77-a91e-7147d1507f19")
	}

	candidates := make([]archive.ExpirationCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, archive.ExpirationCandidate{
			PublicID:      row.PublicID,
			SessionID:     row.SessionID,
			Timestamp:     row.Timestamp,
			RetentionDays: row.RetentionDays,
		})
	}
	return candidates, nil
}

// DeleteByPublicIDs implements archive.ConversationRecordRepository.
func (repo *ConversationRecordGormRepository) DeleteByPublicIDs(ctx context.Context, publicIDs []string) (int64, error) {
	if len(publicIDs) == 0 {
		return 0, nil
	}

	result := repo.getDB(ctx).
		Where("public_id IN ?", publicIDs).
		Delete(&dbschema.ConversationRecord{})
	if result.Error != nil {
		return 0, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, result.Error, "failed to delete conversation records", "ed297989-1b05-4a20-92e3-ea106d992ee0")
	}
	return result.RowsAffected, nil
}

// getDB returns the database connection, checking for transaction context
func (repo *ConversationRecordGormRepository) getDB(ctx context.Context) *gorm.DB {
	return repo.db.GetTx(ctx)
}
