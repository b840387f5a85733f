package testutils

import (
	"time"

	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values and a unique slug
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Organization",
		Slug:     "test-org-" + id.String()[:8],
		Industry: "Technology",
		Country:  "DE",
		IsActive: true,
	}
}

// WithSlug sets a custom slug for the tenant
func (f *TenantFactory) WithSlug(slug string) *models.Tenant {
	tenant := f.Create()
	tenant.Slug = slug
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     "user-" + id.String()[:8] + "@test.com",
		FirstName: "John",
		LastName:  "Doe",
		Role:      models.RoleUser,
		IsActive:  true,
	}
}

// WithTenant places the user in a tenant
func (f *UserFactory) WithTenant(tenantID uuid.UUID) *models.User {
	user := f.Create()
	user.TenantID = &tenantID
	return user
}

// CatalogFactory provides methods to create test Catalog data
type CatalogFactory struct{}

// NewCatalogFactory creates a new CatalogFactory
func NewCatalogFactory() *CatalogFactory {
	return &CatalogFactory{}
}

// Create creates an active national holiday catalog
func (f *CatalogFactory) Create() *models.Catalog {
	return &models.Catalog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Holidays",
		Description: "A test catalog for testing purposes",
		Type:        models.CatalogTypeNationalHolidays,
		IsActive:    true,
	}
}

// WithType sets the catalog type
func (f *CatalogFactory) WithType(catalogType models.CatalogType) *models.Catalog {
	catalog := f.Create()
	catalog.Type = catalogType
	return catalog
}

// Inactive creates a deactivated catalog
func (f *CatalogFactory) Inactive() *models.Catalog {
	catalog := f.Create()
	catalog.IsActive = false
	return catalog
}

// CatalogEventFactory provides methods to create test CatalogEvent data
type CatalogEventFactory struct{}

// NewCatalogEventFactory creates a new CatalogEventFactory
func NewCatalogEventFactory() *CatalogEventFactory {
	return &CatalogEventFactory{}
}

// Create creates a one-day catalog event on 2025-05-01
func (f *CatalogEventFactory) Create() *models.CatalogEvent {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	return &models.CatalogEvent{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CatalogID:  uuid.New(),
		Title:      "Labour Day",
		StartDate:  start,
		EndDate:    start.Add(24*time.Hour - time.Second),
		Tags:       pq.StringArray{"holiday"},
		Industries: pq.StringArray{},
	}
}

// InCatalog creates an event of catalogID starting at start
func (f *CatalogEventFactory) InCatalog(catalogID uuid.UUID, start time.Time) *models.CatalogEvent {
	event := f.Create()
	event.CatalogID = catalogID
	event.StartDate = start
	event.EndDate = start.Add(time.Hour)
	return event
}

// OrganizationEventFactory provides methods to create test OrganizationEvent data
type OrganizationEventFactory struct{}

// NewOrganizationEventFactory creates a new OrganizationEventFactory
func NewOrganizationEventFactory() *OrganizationEventFactory {
	return &OrganizationEventFactory{}
}

// Create creates a one-hour organization event on 2025-05-02
func (f *OrganizationEventFactory) Create() *models.OrganizationEvent {
	start := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)
	return &models.OrganizationEvent{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:  uuid.New(),
		Title:     "All hands",
		StartDate: start,
		EndDate:   start.Add(time.Hour),
		Tags:      pq.StringArray{"internal"},
	}
}

// ForTenant creates an event of tenantID starting at start
func (f *OrganizationEventFactory) ForTenant(tenantID uuid.UUID, start time.Time) *models.OrganizationEvent {
	event := f.Create()
	event.TenantID = tenantID
	event.StartDate = start
	event.EndDate = start.Add(time.Hour)
	return event
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Tenant            *TenantFactory
	User              *UserFactory
	Catalog           *CatalogFactory
	CatalogEvent      *CatalogEventFactory
	OrganizationEvent *OrganizationEventFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:            NewTenantFactory(),
		User:              NewUserFactory(),
		Catalog:           NewCatalogFactory(),
		CatalogEvent:      NewCatalogEventFactory(),
		OrganizationEvent: NewOrganizationEventFactory(),
	}
}
