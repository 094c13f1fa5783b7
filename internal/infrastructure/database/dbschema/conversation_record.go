package dbschema

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/domain/consent"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(ConversationRecord{})
}

// ConversationRecord represents the database schema for archived exchanges.
// Message bodies never land here; only their hashes do.
type ConversationRecord struct {
	BaseModel
	PublicID           string                  `gorm:"type:varchar(50);uniqueIndex;not null"`
	SessionID          string                  `gorm:"type:varchar(100);index:idx_conversation_records_session;not null"`
	Timestamp          time.Time               `gorm:"index:idx_conversation_records_timestamp;not null"`
	UserMessageHash    string                  `gorm:"type:varchar(64);not null"`
	AIResponseHash     string                  `gorm:"type:varchar(64);not null"`
	Persona            string                  `gorm:"type:varchar(50)"`
	Mode               string                  `gorm:"type:varchar(50)"`
	ConsentLevel       consent.Level           `gorm:"type:varchar(20);index:idx_conversation_records_consent;not null;default:'private'"`
	AnonymizedHash     *string                 `gorm:"type:varchar(32)"`
	ExtractedPatterns  *JSONExtractedPatterns  // NULL unless collective consent
	WisdomContribution *JSONWisdomContribution // NULL unless collective consent
}

// JSONExtractedPatterns is a custom type for archive.ExtractedPatterns stored as JSON
type JSONExtractedPatterns archive.ExtractedPatterns

func (j JSONExtractedPatterns) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONExtractedPatterns) Scan(value any) error {
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
func (JSONExtractedPatterns) GormDataType() string { return "json" }

// JSONWisdomContribution is a custom type for archive.WisdomContribution stored as JSON
type JSONWisdomContribution archive.WisdomContribution

func (j JSONWisdomContribution) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONWisdomContribution) Scan(value any) error {
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

func (JSONWisdomContribution) GormDataType() string { return "json" }

// NewSchemaConversationRecord creates a database schema from the domain record
func NewSchemaConversationRecord(d *archive.ConversationRecord) *ConversationRecord {
	record := &ConversationRecord{
		BaseModel: BaseModel{
			ID:        d.ID,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		PublicID:        d.PublicID,
		SessionID:       d.SessionID,
		Timestamp:       d.Timestamp,
		UserMessageHash: d.UserMessageHash,
		AIResponseHash:  d.AIResponseHash,
		Persona:         d.Persona,
		Mode:            d.Mode,
		ConsentLevel:    d.ConsentLevel,
		AnonymizedHash:  d.AnonymizedHash,
	}
	if d.ExtractedPatterns != nil {
		patterns := JSONExtractedPatterns(*d.ExtractedPatterns)
		record.ExtractedPatterns = &patterns
	}
	if d.WisdomContribution != nil {
		contribution := JSONWisdomContribution(*d.WisdomContribution)
		record.WisdomContribution = &contribution
	}
	return record
}

// EtoD converts database schema to domain record (Entity to Domain)
func (r *ConversationRecord) EtoD() *archive.ConversationRecord {
	record := &archive.ConversationRecord{
		ID:              r.ID,
		PublicID:        r.PublicID,
		SessionID:       r.SessionID,
		Timestamp:       r.Timestamp,
		UserMessageHash: r.UserMessageHash,
		AIResponseHash:  r.AIResponseHash,
		Persona:         r.Persona,
		Mode:            r.Mode,
		ConsentLevel:    r.ConsentLevel,
		AnonymizedHash:  r.AnonymizedHash,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.ExtractedPatterns != nil {
		patterns := archive.ExtractedPatterns(*r.ExtractedPatterns)
		record.ExtractedPatterns = &patterns
	}
	if r.WisdomContribution != nil {
		contribution := archive.WisdomContribution(*r.WisdomContribution)
		record.WisdomContribution = &contribution
	}
	return record
}
