package dbschema

import (
	"github.com/chaosweaver007/Genesis/internal/domain/consent"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(ConsentPreference{})
}

// ConsentPreference represents the database schema for session consent settings
type ConsentPreference struct {
	BaseModel
	SessionID                 string        `gorm:"type:varchar(100);uniqueIndex;not null"`
	ConsentLevel              consent.Level `gorm:"type:varchar(20);not null;default:'private'"`
	DataRetentionDays         int           `gorm:"not null;default:30"`
	CollectiveLearningEnabled bool          `gorm:"not null;default:false"`
	AnonymizationRequired     bool          `gorm:"not null;default:true"`
}

// NewSchemaConsentPreference creates a database schema from the domain preference
func NewSchemaConsentPreference(d *consent.Preference) *ConsentPreference {
	return &ConsentPreference{
		BaseModel: BaseModel{
			ID:        d.ID,
			UpdatedAt: d.UpdatedAt,
		},
		SessionID:                 d.SessionID,
		ConsentLevel:              d.Level,
		DataRetentionDays:         d.DataRetentionDays,
		CollectiveLearningEnabled: d.CollectiveLearningEnabled,
		AnonymizationRequired:     d.AnonymizationRequired,
	}
}

// EtoD converts database schema to domain preference (Entity to Domain)
func (p *ConsentPreference) EtoD() *consent.Preference {
	return &consent.Preference{
		ID:                        p.ID,
		SessionID:                 p.SessionID,
		Level:                     p.ConsentLevel,
		DataRetentionDays:         p.DataRetentionDays,
		CollectiveLearningEnabled: p.CollectiveLearningEnabled,
		AnonymizationRequired:     p.AnonymizationRequired,
		UpdatedAt:                 p.UpdatedAt,
	}
}
