package archiverepo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/domain/query"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/dbschema"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/transaction"
	"github.com/chaosweaver007/Genesis/internal/utils/functional"
	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
)

// defaultInsightPageSize bounds insight listings when no limit is requested.
const defaultInsightPageSize = 10

// CollectiveInsightGormRepository implements archive.CollectiveInsightRepository using GORM
type CollectiveInsightGormRepository struct {
	db *transaction.Database
}

var _ archive.CollectiveInsightRepository = (*CollectiveInsightGormRepository)(nil)

// NewCollectiveInsightGormRepository creates a new collective insight repository
func NewCollectiveInsightGormRepository(db *transaction.Database) archive.CollectiveInsightRepository {
	return &CollectiveInsightGormRepository{db: db}
}

// Create implements archive.CollectiveInsightRepository.
func (repo *CollectiveInsightGormRepository) Create(ctx context.Context, insight *archive.CollectiveInsight) error {
	model := dbschema.NewSchemaCollectiveInsight(insight)
	if err := repo.getDB(ctx).Create(model).Error; err != nil {
		return platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to create collective insight", "7cf4efc4-c702-4007-b459-ce721b197cca")
	}
	// Update the domain object with generated ID and timestamps
	insight.ID = model.ID
	insight.CreatedAt = model.CreatedAt
	insight.UpdatedAt = model.UpdatedAt
	return nil
}

// TitleExistsContaining implements archive.CollectiveInsightRepository.
// The fragment is passed to LIKE unescaped, so `_` keeps its single-character
// wildcard meaning and a theme key matches its spaced title form.
func (repo *CollectiveInsightGormRepository) TitleExistsContaining(ctx context.Context, fragment string) (bool, error) {
	var count int64
	if err := repo.getDB(ctx).
		Model(&dbschema.CollectiveInsight{}).
		Where("lower(title) LIKE ?", "%"+strings.ToLower(fragment)+"%").
		Count(&count).Error; err != nil {
		return false, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to check insight title existence", "b1a806eb-e55f-4af4-b848-482fcd9e792f")
	}
	return count > 0, nil
}

// FindByFilter implements archive.CollectiveInsightRepository.
func (repo *CollectiveInsightGormRepository) FindByFilter(ctx context.Context, filter archive.InsightFilter, pagination *query.Pagination) ([]*archive.CollectiveInsight, error) {
	q := repo.applyFilter(repo.getDB(ctx).Model(&dbschema.CollectiveInsight{}), filter)
	q = q.Order("confidence_score DESC, created_at DESC")

	limit := defaultInsightPageSize
	if pagination != nil {
		limit = pagination.EffectiveLimit(defaultInsightPageSize)
		if pagination.Offset != nil && *pagination.Offset > 0 {
			q = q.Offset(*pagination.Offset)
		}
	}
	q = q.Limit(limit)

	var rows []dbschema.CollectiveInsight
	if err := q.Find(&rows).Error; err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to find collective insights", "ad3bb14f-c8b2-4422-b8e7-49c562a2929e")
	}

	result := functional.Map(rows, func(item dbschema.CollectiveInsight) *archive.CollectiveInsight {
		return item.EtoD()
	})
	return result, nil
}

// FindByPublicID implements archive.CollectiveInsightRepository.
func (repo *CollectiveInsightGormRepository) FindByPublicID(ctx context.Context, publicID string) (*archive.CollectiveInsight, error) {
	var model dbschema.CollectiveInsight
	if err := repo.getDB(ctx).Where("public_id = ?", publicID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to find collective insight by public ID", "1d0d233d-43c0-4f1c-bdb6-84c4025fde31")
	}
	return model.EtoD(), nil
}

// UpdateReviewStatus implements archive.CollectiveInsightRepository.
func (repo *CollectiveInsightGormRepository) UpdateReviewStatus(ctx context.Context, publicID string, status archive.ReviewStatus) error {
	if err := repo.getDB(ctx).
		Model(&dbschema.CollectiveInsight{}).
		Where("public_id = ?", publicID).
		Update("review_status", string(status)).Error; err != nil {
		return platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to update insight review status", "9fee176a-4186-4951-a9d1-2c3088fc2ca7")
	}
	return nil
}

// Count implements archive.CollectiveInsightRepository.
func (repo *CollectiveInsightGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.getDB(ctx).Model(&dbschema.CollectiveInsight{}).Count(&count).Error; err != nil {
		return 0, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to count collective insights", "01796640-8abb-42bc-8be6-d88b9c83fd7c")
	}
	return count, nil
}

// getDB returns the database connection, checking for transaction context
func (repo *CollectiveInsightGormRepository) getDB(ctx context.Context) *gorm.DB {
	return repo.db.GetTx(ctx)
}

// applyFilter applies filter criteria to the query
func (repo *CollectiveInsightGormRepository) applyFilter(db *gorm.DB, filter archive.InsightFilter) *gorm.DB {
	if filter.ReviewStatus != nil {
		db = db.Where("review_status = ?", string(*filter.ReviewStatus))
	}
	return db
}
