package dbschema

import "time"

// BaseModel carries the surrogate key and row timestamps shared by every
// registered schema.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
