package archiverepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/domain/query"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/dbschema"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/transaction"
	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
)

// defaultPatternPageSize bounds pattern listings when no limit is requested.
const defaultPatternPageSize = 20

// WisdomPatternGormRepository implements archive.WisdomPatternRepository using GORM
type WisdomPatternGormRepository struct {
	db *transaction.Database
}

var _ archive.WisdomPatternRepository = (*WisdomPatternGormRepository)(nil)

// NewWisdomPatternGormRepository creates a new wisdom pattern repository
func NewWisdomPatternGormRepository(db *transaction.Database) archive.WisdomPatternRepository {
	return &WisdomPatternGormRepository{db: db}
}

// Create implements archive.WisdomPatternRepository.
func (repo *WisdomPatternGormRepository) Create(ctx context.Context, pattern *archive.WisdomPattern) error {
	model, err := dbschema.NewSchemaWisdomPattern(pattern)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeValidation, "failed to convert wisdom pattern to schema", err, "16627603-aa70-4384-ad82-3b96c80208e7")
	}

	if err := repo.getDB(ctx).Create(model).Error; err != nil {
		return platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to create wisdom pattern", "b54aafbc-9efc-44d7-8ee4-425588c5f8fb")
	}
	// Update the domain object with generated ID and timestamps
	pattern.ID = model.ID
	pattern.CreatedAt = model.CreatedAt
	pattern.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByTheme implements archive.WisdomPatternRepository.
func (repo *WisdomPatternGormRepository) FindByTheme(ctx context.Context, themeCategory string) (*archive.WisdomPattern, error) {
	var model dbschema.WisdomPattern
	if err := repo.getDB(ctx).Where("theme_category = ?", themeCategory).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to find wisdom pattern by theme", "c49020d3-d7dd-4a3e-b4b4-bc956631524d")
	}

	pattern, err := model.EtoD()
	if err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to convert wisdom pattern schema to domain", "57873cd2-4b82-4537-b44d-1c517bf30a5b")
	}
	return pattern, nil
}

// IncrementFrequency implements archive.WisdomPatternRepository.
func (repo *WisdomPatternGormRepository) IncrementFrequency(ctx context.Context, id uint) error {
	if err := repo.getDB(ctx).
		Model(&dbschema.WisdomPattern{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"frequency":  gorm.Expr("frequency + 1"),
			"updated_at": time.Now().UTC(),
		}).Error; err != nil {
		return platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to increment wisdom pattern frequency", "7e3594c9-5889-4139-a1e8-b67aea6a2b5e")
	}
	return nil
}

// FindByFilter implements archive.WisdomPatternRepository.
func (repo *WisdomPatternGormRepository) FindByFilter(ctx context.Context, filter archive.PatternFilter, pagination *query.Pagination) ([]*archive.WisdomPattern, error) {
	q := repo.applyFilter(repo.getDB(ctx).Model(&dbschema.WisdomPattern{}), filter)
	q = q.Order("frequency DESC, effectiveness_score DESC")

	limit := defaultPatternPageSize
	if pagination != nil {
		limit = pagination.EffectiveLimit(defaultPatternPageSize)
		if pagination.Offset != nil && *pagination.Offset > 0 {
			q = q.Offset(*pagination.Offset)
		}
	}
	q = q.Limit(limit)

	var rows []dbschema.WisdomPattern
	if err := q.Find(&rows).Error; err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to find wisdom patterns", "e006a3eb-eb20-457e-9b33-3b5225f98455")
	}

	patterns := make([]*archive.WisdomPattern, 0, len(rows))
	for _, row := range rows {
		pattern, err := row.EtoD()
		if err != nil {
			return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to convert wisdom pattern schema to domain", "fdb9dd33-cb97-4e14-affa-ec033e9d6afc")
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

// FindHighValue implements archive.WisdomPatternRepository.
func (repo *WisdomPatternGormRepository) FindHighValue(ctx context.Context, minFrequency int, minEffectiveness float64) ([]*archive.WisdomPattern, error) {
	var rows []dbschema.WisdomPattern
	if err := repo.getDB(ctx).
		Where("frequency >= ? AND effectiveness_score > ?", minFrequency, minEffectiveness).
		Order("frequency DESC").
		Find(&rows).Error; err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to find high value wisdom patterns", "46857120-9cf1-4634-84cd-3ae2300c37a8")
	}

	patterns := make([]*archive.WisdomPattern, 0, len(rows))
	for _, row := range rows {
		pattern, err := row.EtoD()
		if err != nil {
			return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to convert wisdom pattern schema to domain", "acae5e05-9409-4b16-9a17-f378037b585c")
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

// Count implements archive.WisdomPatternRepository.
func (repo *WisdomPatternGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.getDB(ctx).Model(&dbschema.WisdomPattern{}).Count(&count).Error; err != nil {
		return 0, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to count wisdom patterns", "bb8c37b1-c015-4150-80cb-dbb5c177e53d")
	}
	return count, nil
}

// TopThemes implements archive.WisdomPatternRepository.
func (repo *WisdomPatternGormRepository) TopThemes(ctx context.Context, limit int) ([]archive.ThemeFrequency, error) {
	var rows []archive.ThemeFrequency
	if err := repo.getDB(ctx).
		Model(&dbschema.WisdomPattern{}).
		Select("theme_category, frequency").
		Order("frequency DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, platformerrors.AsErrorWithUUID(ctx, platformerrors.LayerRepository, err, "failed to list top themes", "b4483b13-d14d-4f2a-b516-05612084962b")
	}
	return rows, nil
}

// getDB returns the database connection, checking for transaction context
func (repo *WisdomPatternGormRepository) getDB(ctx context.Context) *gorm.DB {
	return repo.db.GetTx(ctx)
}

// applyFilter applies filter criteria to the query
func (repo *WisdomPatternGormRepository) applyFilter(db *gorm.DB, filter archive.PatternFilter) *gorm.DB {
	if filter.ThemeCategory != nil {
		db = db.Where("theme_category = ?", *filter.ThemeCategory)
	}
	return db
}
