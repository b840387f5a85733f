package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// CatalogEvent is one event inside a Catalog. RecurrenceRule is stored and
// passed through as-is; it is never expanded into occurrences.
type CatalogEvent struct {
	BaseModel
	CatalogID      uuid.UUID      `json:"catalogId" gorm:"type:uuid;not null;index"`
	Title          string         `json:"title" gorm:"not null;size:255"`
	Description    string         `json:"description" gorm:"type:text"`
	StartDate      time.Time      `json:"startDate" gorm:"not null;index"`
	EndDate        time.Time      `json:"endDate" gorm:"not null"`
	IsRecurring    bool           `json:"isRecurring" gorm:"not null;default:false"`
	RecurrenceRule *string        `json:"recurrenceRule" gorm:"type:text"`
	Tags           pq.StringArray `json:"tags" gorm:"type:text[];not null;default:'{}'"`
	Industries     pq.StringArray `json:"industries" gorm:"type:text[];not null;default:'{}'"`
	Country        *string        `json:"country" gorm:"size:100;index"`
	Region         *string        `json:"region" gorm:"size:100;index"`
	Metadata       datatypes.JSON `json:"metadata" gorm:"type:jsonb"`

	Catalog *Catalog `json:"catalog,omitempty" gorm:"foreignKey:CatalogID"`
}

// TableName returns the table name for CatalogEvent
func (CatalogEvent) TableName() string {
	return "catalog_events"
}
