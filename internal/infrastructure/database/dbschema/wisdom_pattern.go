package dbschema

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(WisdomPattern{})
}

// WisdomPattern represents the database schema for aggregated theme patterns.
// One row per theme; frequency grows, rows are never removed.
type WisdomPattern struct {
	BaseModel
	PublicID           string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	PatternType        string  `gorm:"type:varchar(50);not null"`
	ThemeCategory      string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	Frequency          int     `gorm:"not null;default:1"`
	EffectivenessScore float64 `gorm:"not null;default:0.5"`
	Examples           datatypes.JSON
}

// NewSchemaWisdomPattern converts a domain pattern to a database schema
func NewSchemaWisdomPattern(p *archive.WisdomPattern) (*WisdomPattern, error) {
	examples := p.Examples
	if examples == nil {
		examples = []string{}
	}
	examplesJSON, err := json.Marshal(examples)
	if err != nil {
		return nil, err
	}

	return &WisdomPattern{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		},
		PublicID:           p.PublicID,
		PatternType:        p.PatternType,
		ThemeCategory:      p.ThemeCategory,
		Frequency:          p.Frequency,
		EffectivenessScore: p.EffectivenessScore,
		Examples:           datatypes.JSON(examplesJSON),
	}, nil
}

// EtoD converts database schema to domain pattern (Entity to Domain)
func (p *WisdomPattern) EtoD() (*archive.WisdomPattern, error) {
	examples := []string{}
	if len(p.Examples) > 0 {
		if err := json.Unmarshal(p.Examples, &examples); err != nil {
			return nil, err
		}
	}

	return &archive.WisdomPattern{
		ID:                 p.ID,
		PublicID:           p.PublicID,
		PatternType:        p.PatternType,
		ThemeCategory:      p.ThemeCategory,
		Frequency:          p.Frequency,
		EffectivenessScore: p.EffectivenessScore,
		Examples:           examples,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}, nil
}
