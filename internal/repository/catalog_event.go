package repository

import (
	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const batchSize = 100

// CatalogEventRepository handles database operations for catalog events
type CatalogEventRepository struct {
	db *gorm.DB
}

// NewCatalogEventRepository creates a new catalog event repository
func NewCatalogEventRepository(db *gorm.DB) *CatalogEventRepository {
	return &CatalogEventRepository{db: db}
}

// Create creates a new catalog event
func (r *CatalogEventRepository) Create(event *models.CatalogEvent) error {
	return r.db.Create(event).Error
}

// CreateBatch inserts events in one transaction and reports how many were stored
func (r *CatalogEventRepository) CreateBatch(events []models.CatalogEvent) (int64, error) {
	if len(events) == 0 {
		return 0, nil
	}
	result := r.db.Omit("Catalog").CreateInBatches(events, batchSize)
	return result.RowsAffected, result.Error
}

// GetByID retrieves a catalog event by ID with its catalog
func (r *CatalogEventRepository) GetByID(id uuid.UUID) (*models.CatalogEvent, error) {
	var event models.CatalogEvent
	err := r.db.Preload("Catalog").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByCatalogID retrieves the events of a catalog ordered by start date
func (r *CatalogEventRepository) GetByCatalogID(catalogID uuid.UUID, limit, offset int) ([]models.CatalogEvent, int64, error) {
	var events []models.CatalogEvent
	var total int64

	if err := r.db.Model(&models.CatalogEvent{}).Where("catalog_id = ?", catalogID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("catalog_id = ?", catalogID).
		Order("start_date ASC").
		Limit(limit).Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// CountByCatalogIDs counts events per catalog
func (r *CatalogEventRepository) CountByCatalogIDs(catalogIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return countEventsByCatalog(r.db, catalogIDs)
}

// Count counts the events of every catalog
func (r *CatalogEventRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.CatalogEvent{}).Count(&count).Error
	return count, err
}

// Update updates a catalog event
func (r *CatalogEventRepository) Update(event *models.CatalogEvent) error {
	return r.db.Omit("Catalog").Save(event).Error
}

// Delete deletes a catalog event
func (r *CatalogEventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CatalogEvent{}, "id = ?", id).Error
}

func countEventsByCatalog(db *gorm.DB, catalogIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(catalogIDs))
	if len(catalogIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CatalogID uuid.UUID
		Count     int64
	}
	err := db.Model(&models.CatalogEvent{}).
		Select("catalog_id, COUNT(*) AS count").
		Where("catalog_id IN ?", catalogIDs).
		Group("catalog_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CatalogID] = row.Count
	}
	return counts, nil
}
