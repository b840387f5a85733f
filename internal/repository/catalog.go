package repository

import (
	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository handles database operations for catalogs
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Create creates a new catalog
func (r *CatalogRepository) Create(catalog *models.Catalog) error {
	return r.db.Select("*").Omit("Events").Create(catalog).Error
}

// GetByID retrieves a catalog by ID
func (r *CatalogRepository) GetByID(id uuid.UUID) (*models.Catalog, error) {
	var catalog models.Catalog
	err := r.db.First(&catalog, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}

// GetAll retrieves catalogs ordered by name, optionally only active ones
func (r *CatalogRepository) GetAll(activeOnly bool) ([]models.Catalog, error) {
	var catalogs []models.Catalog
	query := r.db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&catalogs).Error; err != nil {
		return nil, err
	}
	return catalogs, nil
}

// GetAvailableForTenant retrieves active catalogs the tenant has not subscribed to
func (r *CatalogRepository) GetAvailableForTenant(tenantID uuid.UUID) ([]models.Catalog, error) {
	var catalogs []models.Catalog
	subscribed := r.db.Model(&models.CatalogSubscription{}).
		Select("catalog_id").
		Where("tenant_id = ?", tenantID)

	err := r.db.
		Where("is_active = ?", true).
		Where("id NOT IN (?)", subscribed).
		Order("name ASC").
		Find(&catalogs).Error
	if err != nil {
		return nil, err
	}
	return catalogs, nil
}

// Update updates a catalog
func (r *CatalogRepository) Update(catalog *models.Catalog) error {
	return r.db.Save(catalog).Error
}

// Delete deletes a catalog together with its events
func (r *CatalogRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Catalog{}, "id = ?", id).Error
}

// CatalogCount is the number of catalogs sharing a type and active flag
type CatalogCount struct {
	Type     models.CatalogType
	IsActive bool
	Count    int64
}

// CountByTypeAndStatus counts catalogs grouped by type and active flag
func (r *CatalogRepository) CountByTypeAndStatus() ([]CatalogCount, error) {
	var rows []CatalogCount
	err := r.db.Model(&models.Catalog{}).
		Select("type, is_active, COUNT(*) AS count").
		Group("type, is_active").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
