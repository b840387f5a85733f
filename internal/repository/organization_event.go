package repository

import (
	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationEventRepository handles database operations for organization events
type OrganizationEventRepository struct {
	db *gorm.DB
}

// NewOrganizationEventRepository creates a new organization event repository
func NewOrganizationEventRepository(db *gorm.DB) *OrganizationEventRepository {
	return &OrganizationEventRepository{db: db}
}

// Create creates a new organization event
func (r *OrganizationEventRepository) Create(event *models.OrganizationEvent) error {
	return r.db.Omit("CreatedBy").Create(event).Error
}

// CreateBatch inserts events in one transaction and reports how many were stored
func (r *OrganizationEventRepository) CreateBatch(events []models.OrganizationEvent) (int64, error) {
	if len(events) == 0 {
		return 0, nil
	}
	result := r.db.Omit("CreatedBy").CreateInBatches(events, batchSize)
	return result.RowsAffected, result.Error
}

// GetByID retrieves an organization event by ID with its creator
func (r *OrganizationEventRepository) GetByID(id uuid.UUID) (*models.OrganizationEvent, error) {
	var event models.OrganizationEvent
	err := r.db.Preload("CreatedBy").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByTenantID retrieves a tenant's events ordered by start date
func (r *OrganizationEventRepository) GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.OrganizationEvent, int64, error) {
	var events []models.OrganizationEvent
	var total int64

	if err := r.db.Model(&models.OrganizationEvent{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("CreatedBy").
		Where("tenant_id = ?", tenantID).
		Order("start_date ASC").
		Limit(limit).Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// CountByTenantID counts a tenant's events
func (r *OrganizationEventRepository) CountByTenantID(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrganizationEvent{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}

// Update updates an organization event
func (r *OrganizationEventRepository) Update(event *models.OrganizationEvent) error {
	return r.db.Omit("CreatedBy").Save(event).Error
}

// Delete deletes an organization event
func (r *OrganizationEventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.OrganizationEvent{}, "id = ?", id).Error
}
