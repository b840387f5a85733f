package models

import (
	"time"

	"github.com/google/uuid"
)

// CatalogSubscription is a tenant's blanket opt-in to an entire Catalog.
// Inactive subscriptions are kept but have no effect.
type CatalogSubscription struct {
	BaseModel
	TenantID     uuid.UUID `json:"tenantId" gorm:"type:uuid;not null;uniqueIndex:idx_catalog_subscriptions_tenant_catalog"`
	CatalogID    uuid.UUID `json:"catalogId" gorm:"type:uuid;not null;uniqueIndex:idx_catalog_subscriptions_tenant_catalog;index"`
	IsActive     bool      `json:"isActive" gorm:"not null;default:true"`
	SubscribedAt time.Time `json:"subscribedAt" gorm:"not null;autoCreateTime"`

	Catalog *Catalog `json:"catalog,omitempty" gorm:"foreignKey:CatalogID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CatalogSubscription
func (CatalogSubscription) TableName() string {
	return "catalog_subscriptions"
}

// EventSubscription is a tenant's opt-in, or explicit soft-hide when
// IsVisible is false, for one CatalogEvent.
type EventSubscription struct {
	BaseModel
	TenantID       uuid.UUID `json:"tenantId" gorm:"type:uuid;not null;uniqueIndex:idx_event_subscriptions_tenant_event"`
	CatalogEventID uuid.UUID `json:"catalogEventId" gorm:"type:uuid;not null;uniqueIndex:idx_event_subscriptions_tenant_event;index"`
	IsVisible      bool      `json:"isVisible" gorm:"not null;default:true"`
	SubscribedAt   time.Time `json:"subscribedAt" gorm:"not null;autoCreateTime"`

	CatalogEvent *CatalogEvent `json:"catalogEvent,omitempty" gorm:"foreignKey:CatalogEventID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EventSubscription
func (EventSubscription) TableName() string {
	return "event_subscriptions"
}
