package repository

import (
	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. All columns are written so that IsActive=false survives.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Select("*").Create(user).Error
}

// CountByTenantID counts the users belonging to a tenant
func (r *UserRepository) CountByTenantID(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}

// CountActiveByTenantID counts the users of a tenant that may still sign in
func (r *UserRepository) CountActiveByTenantID(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("tenant_id = ? AND is_active = ?", tenantID, true).Count(&count).Error
	return count, err
}
