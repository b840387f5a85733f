package repository

import (
	"context"

	"tenant-calendar-backend/internal/calendar"
	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetBySlug(slug string) (*models.Tenant, error)
	GetAll(limit, offset int) ([]models.Tenant, int64, error)
	Update(tenant *models.Tenant) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	CountByTenantID(tenantID uuid.UUID) (int64, error)
	CountActiveByTenantID(tenantID uuid.UUID) (int64, error)
}

// CatalogRepositoryInterface defines the interface for catalog repository operations
type CatalogRepositoryInterface interface {
	Create(catalog *models.Catalog) error
	GetByID(id uuid.UUID) (*models.Catalog, error)
	GetAll(activeOnly bool) ([]models.Catalog, error)
	GetAvailableForTenant(tenantID uuid.UUID) ([]models.Catalog, error)
	CountByTypeAndStatus() ([]CatalogCount, error)
	Update(catalog *models.Catalog) error
	Delete(id uuid.UUID) error
}

// CatalogEventRepositoryInterface defines the interface for catalog event repository operations
type CatalogEventRepositoryInterface interface {
	Create(event *models.CatalogEvent) error
	CreateBatch(events []models.CatalogEvent) (int64, error)
	GetByID(id uuid.UUID) (*models.CatalogEvent, error)
	GetByCatalogID(catalogID uuid.UUID, limit, offset int) ([]models.CatalogEvent, int64, error)
	CountByCatalogIDs(catalogIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	Count() (int64, error)
	Update(event *models.CatalogEvent) error
	Delete(id uuid.UUID) error
}

// OrganizationEventRepositoryInterface defines the interface for organization event repository operations
type OrganizationEventRepositoryInterface interface {
	Create(event *models.OrganizationEvent) error
	CreateBatch(events []models.OrganizationEvent) (int64, error)
	GetByID(id uuid.UUID) (*models.OrganizationEvent, error)
	GetByTenantID(tenantID uuid.UUID, limit, offset int) ([]models.OrganizationEvent, int64, error)
	CountByTenantID(tenantID uuid.UUID) (int64, error)
	Update(event *models.OrganizationEvent) error
	Delete(id uuid.UUID) error
}

// CatalogSubscriptionRepositoryInterface defines the interface for catalog subscription repository operations
type CatalogSubscriptionRepositoryInterface interface {
	Create(sub *models.CatalogSubscription) error
	GetByID(id uuid.UUID) (*models.CatalogSubscription, error)
	GetByTenantAndCatalog(tenantID, catalogID uuid.UUID) (*models.CatalogSubscription, error)
	GetByTenantID(tenantID uuid.UUID) ([]models.CatalogSubscription, error)
	CountActiveByTenantID(tenantID uuid.UUID) (int64, error)
	UpdateActive(id uuid.UUID, isActive bool) error
	Delete(id uuid.UUID) error
}

// EventSubscriptionRepositoryInterface defines the interface for event subscription repository operations
type EventSubscriptionRepositoryInterface interface {
	Create(sub *models.EventSubscription) error
	Upsert(sub *models.EventSubscription) error
	GetByTenantAndEvent(tenantID, eventID uuid.UUID) (*models.EventSubscription, error)
	GetByTenantID(tenantID uuid.UUID) ([]models.EventSubscription, error)
	Count() (int64, error)
	CountVisibleByTenantID(tenantID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// CalendarRepositoryInterface defines the read operations behind calendar aggregation
type CalendarRepositoryInterface interface {
	ListActiveCatalogSubscriptions(ctx context.Context, tenantID uuid.UUID) ([]models.CatalogSubscription, error)
	ListEventSubscriptions(ctx context.Context, tenantID uuid.UUID) ([]models.EventSubscription, error)
	FindCatalogEvents(ctx context.Context, pred calendar.CatalogEventPredicate) ([]models.CatalogEvent, error)
	FindOrganizationEvents(ctx context.Context, pred calendar.OrganizationEventPredicate) ([]models.OrganizationEvent, error)
	CountCatalogEvents(ctx context.Context, pred calendar.CatalogEventPredicate) (int64, error)
	CountOrganizationEvents(ctx context.Context, pred calendar.OrganizationEventPredicate) (int64, error)
	CountEventsByCatalog(ctx context.Context, catalogIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}
