package repository

import (
	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogSubscriptionRepository handles database operations for catalog subscriptions
type CatalogSubscriptionRepository struct {
	db *gorm.DB
}

// NewCatalogSubscriptionRepository creates a new catalog subscription repository
func NewCatalogSubscriptionRepository(db *gorm.DB) *CatalogSubscriptionRepository {
	return &CatalogSubscriptionRepository{db: db}
}

// Create creates a new catalog subscription
func (r *CatalogSubscriptionRepository) Create(sub *models.CatalogSubscription) error {
	return r.db.Omit("Catalog").Create(sub).Error
}

// GetByID retrieves a catalog subscription by ID with its catalog
func (r *CatalogSubscriptionRepository) GetByID(id uuid.UUID) (*models.CatalogSubscription, error) {
	var sub models.CatalogSubscription
	err := r.db.Preload("Catalog").First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByTenantAndCatalog retrieves the subscription of a tenant to a catalog
func (r *CatalogSubscriptionRepository) GetByTenantAndCatalog(tenantID, catalogID uuid.UUID) (*models.CatalogSubscription, error) {
	var sub models.CatalogSubscription
	err := r.db.First(&sub, "tenant_id = ? AND catalog_id = ?", tenantID, catalogID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByTenantID retrieves all catalog subscriptions of a tenant, newest first
func (r *CatalogSubscriptionRepository) GetByTenantID(tenantID uuid.UUID) ([]models.CatalogSubscription, error) {
	var subs []models.CatalogSubscription
	err := r.db.Preload("Catalog").
		Where("tenant_id = ?", tenantID).
		Order("subscribed_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// CountActiveByTenantID counts a tenant's active catalog subscriptions
func (r *CatalogSubscriptionRepository) CountActiveByTenantID(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.CatalogSubscription{}).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Count(&count).Error
	return count, err
}

// UpdateActive toggles a subscription without deleting it
func (r *CatalogSubscriptionRepository) UpdateActive(id uuid.UUID, isActive bool) error {
	return r.db.Model(&models.CatalogSubscription{}).Where("id = ?", id).Update("is_active", isActive).Error
}

// Delete deletes a catalog subscription
func (r *CatalogSubscriptionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CatalogSubscription{}, "id = ?", id).Error
}

// EventSubscriptionRepository handles database operations for event subscriptions
type EventSubscriptionRepository struct {
	db *gorm.DB
}

// NewEventSubscriptionRepository creates a new event subscription repository
func NewEventSubscriptionRepository(db *gorm.DB) *EventSubscriptionRepository {
	return &EventSubscriptionRepository{db: db}
}

// Create creates a new event subscription
func (r *EventSubscriptionRepository) Create(sub *models.EventSubscription) error {
	return r.db.Omit("CatalogEvent").Create(sub).Error
}

// Upsert creates the tenant's subscription to an event or updates its visibility.
// All columns are written so that IsVisible=false is not replaced by the column default.
func (r *EventSubscriptionRepository) Upsert(sub *models.EventSubscription) error {
	return r.db.Select("*").Omit("CatalogEvent").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "catalog_event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_visible", "updated_at"}),
	}).Create(sub).Error
}

// GetByTenantAndEvent retrieves the subscription of a tenant to an event
func (r *EventSubscriptionRepository) GetByTenantAndEvent(tenantID, eventID uuid.UUID) (*models.EventSubscription, error) {
	var sub models.EventSubscription
	err := r.db.First(&sub, "tenant_id = ? AND catalog_event_id = ?", tenantID, eventID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByTenantID retrieves all event subscriptions of a tenant with their events and catalogs
func (r *EventSubscriptionRepository) GetByTenantID(tenantID uuid.UUID) ([]models.EventSubscription, error) {
	var subs []models.EventSubscription
	err := r.db.Preload("CatalogEvent.Catalog").
		Where("tenant_id = ?", tenantID).
		Order("subscribed_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// Count counts event subscriptions across all tenants
func (r *EventSubscriptionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.EventSubscription{}).Count(&count).Error
	return count, err
}

// CountVisibleByTenantID counts the events a tenant has subscribed to and not hidden
func (r *EventSubscriptionRepository) CountVisibleByTenantID(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.EventSubscription{}).
		Where("tenant_id = ? AND is_visible = ?", tenantID, true).
		Count(&count).Error
	return count, err
}

// Delete deletes an event subscription
func (r *EventSubscriptionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.EventSubscription{}, "id = ?", id).Error
}
