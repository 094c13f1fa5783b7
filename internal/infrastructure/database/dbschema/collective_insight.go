package dbschema

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(CollectiveInsight{})
}

// CollectiveInsight represents the database schema for synthesized insights
type CollectiveInsight struct {
	BaseModel
	PublicID         string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	Title            string         `gorm:"type:varchar(256);not null"`
	Description      string         `gorm:"type:text;not null"`
	SupportingThemes JSONStringList
	ConfidenceScore  float64        `gorm:"not null;default:0"`
	ImpactArea       string         `gorm:"type:varchar(50)"`
	ReviewStatus     string         `gorm:"type:varchar(20);not null;default:'pending';index"`
}

// JSONStringList is a custom type for string slices stored as JSON
type JSONStringList []string

func (j JSONStringList) Value() (driver.Value, error) {
	if j == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(j)
}

func (j *JSONStringList) Scan(value any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("expected []byte, got %T", value)
	}
}

// GormDataType keeps auto-migration portable across drivers.
func (JSONStringList) GormDataType() string { return "json" }

// NewSchemaCollectiveInsight creates a database schema from the domain insight
func NewSchemaCollectiveInsight(d *archive.CollectiveInsight) *CollectiveInsight {
	return &CollectiveInsight{
		BaseModel: BaseModel{
			ID:        d.ID,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		PublicID:         d.PublicID,
		Title:            d.Title,
		Description:      d.Description,
		SupportingThemes: JSONStringList(d.SupportingThemes),
		ConfidenceScore:  d.ConfidenceScore,
		ImpactArea:       d.ImpactArea,
		ReviewStatus:     string(d.ReviewStatus),
	}
}

// EtoD converts database schema to domain insight (Entity to Domain)
func (i *CollectiveInsight) EtoD() *archive.CollectiveInsight {
	return &archive.CollectiveInsight{
		ID:               i.ID,
		PublicID:         i.PublicID,
		Title:            i.Title,
		Description:      i.Description,
		SupportingThemes: []string(i.SupportingThemes),
		ConfidenceScore:  i.ConfidenceScore,
		ImpactArea:       i.ImpactArea,
		ReviewStatus:     archive.ReviewStatus(i.ReviewStatus),
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}
