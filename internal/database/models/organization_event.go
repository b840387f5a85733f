package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// OrganizationEvent is a private event owned by exactly one Tenant
type OrganizationEvent struct {
	BaseModel
	TenantID       uuid.UUID      `json:"tenantId" gorm:"type:uuid;not null;index"`
	Title          string         `json:"title" gorm:"not null;size:255"`
	Description    string         `json:"description" gorm:"type:text"`
	StartDate      time.Time      `json:"startDate" gorm:"not null;index"`
	EndDate        time.Time      `json:"endDate" gorm:"not null"`
	IsRecurring    bool           `json:"isRecurring" gorm:"not null;default:false"`
	RecurrenceRule *string        `json:"recurrenceRule" gorm:"type:text"`
	Tags           pq.StringArray `json:"tags" gorm:"type:text[];not null;default:'{}'"`
	Metadata       datatypes.JSON `json:"metadata" gorm:"type:jsonb"`
	CreatedByID    *uuid.UUID     `json:"createdById" gorm:"type:uuid"`

	// CreatedBy is a weak reference used for display only
	CreatedBy *User `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for OrganizationEvent
func (OrganizationEvent) TableName() string {
	return "organization_events"
}
