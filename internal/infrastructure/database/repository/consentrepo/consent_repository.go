package consentrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chaosweaver007/Genesis/internal/domain/consent"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/dbschema"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/transaction"
	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
)

// ConsentGormRepository implements consent.Repository using GORM
type ConsentGormRepository struct {
	db *transaction.Database
}

var _ consent.Repository = (*ConsentGormRepository)(nil)

// NewConsentGormRepository creates a new consent preference repository
func NewConsentGormRepository(db *transaction.Database) consent.Repository {
	return &ConsentGormRepository{db: db}
}

// Upsert implements consent.Repository.
func (repo *ConsentGormRepository) Upsert(ctx context.Context, preference *consent.Preference) error {
	model := dbschema.NewSchemaConsentPreference(preference)

	// An explicit timestamp instead of NOW() keeps the statement valid on
	// sqlite as well as postgres.
	assignments := map[string]interface{}{
		"consent_level":               model.ConsentLevel,
		"data_retention_days":         model.DataRetentionDays,
		"collective_learning_enabled": model.CollectiveLearningEnabled,
		"anonymization_required":      model.AnonymizationRequired,
		"updated_at":                  time.Now().UTC(),
	}

	if err := repo.getDB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(model).Error; err != nil {
		return platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to upsert consent preference", "6e1af7d1-7c9a-4f96-81aa-b432f4a83fa6")
	}

	// Reload to capture the persisted ID and timestamps on the conflict path.
	var persisted dbschema.ConsentPreference
	if err := repo.getDB(ctx).
		Where("session_id = ?", model.SessionID).
		First(&persisted).Error; err != nil {
		return platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to reload upserted consent preference", "caa7f419-3a30-4ba8-a712-42022553dabf")
	}

	preference.ID = persisted.ID
	preference.UpdatedAt = persisted.UpdatedAt
	return nil
}

// FindBySessionID implements consent.Repository.
func (repo *ConsentGormRepository) FindBySessionID(ctx context.Context, sessionID string) (*consent.Preference, error) {
	var model dbschema.ConsentPreference
	if err := repo.getDB(ctx).Where("session_id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to find consent preference by session ID", "11b78bd0-b321-4bc6-bd6c-0e09ae960f82")
	}
	return model.EtoD(), nil
}

// getDB returns the database connection, checking for transaction context
func (repo *ConsentGormRepository) getDB(ctx context.Context) *gorm.DB {
	return repo.db.GetTx(ctx)
}
