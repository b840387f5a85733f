package service

import (
	"context"

	"tenant-calendar-backend/internal/calendar"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CalendarServiceInterface defines the interface for the unified calendar
type CalendarServiceInterface interface {
	GetUnifiedCalendar(ctx context.Context, tenantID *uuid.UUID, spec calendar.FilterSpec) (*calendar.Result, error)
	GetEventsByMonth(ctx context.Context, tenantID *uuid.UUID, year, month int, spec calendar.FilterSpec) (*calendar.Result, error)
	GetCalendarStats(ctx context.Context, tenantID *uuid.UUID) (*calendar.Stats, error)
	ExportICal(ctx context.Context, tenantID *uuid.UUID, spec calendar.FilterSpec) (string, error)
}

// SubscriptionServiceInterface defines the interface for subscription service
type SubscriptionServiceInterface interface {
	ListCatalogSubscriptions(tenantID uuid.UUID) ([]CatalogSubscriptionResponse, error)
	ListAvailableCatalogs(tenantID uuid.UUID) ([]CatalogResponse, error)
	SubscribeToCatalog(tenantID uuid.UUID, req *SubscribeToCatalogRequest) (*CatalogSubscriptionResponse, error)
	UpdateCatalogSubscription(tenantID, subscriptionID uuid.UUID, req *UpdateCatalogSubscriptionRequest) (*CatalogSubscriptionResponse, error)
	UnsubscribeFromCatalog(tenantID, subscriptionID uuid.UUID) error
	ListEventSubscriptions(tenantID uuid.UUID) ([]EventSubscriptionResponse, error)
	GetEventSubscriptionStatus(tenantID, catalogID, eventID uuid.UUID) (*EventSubscriptionStatusResponse, error)
	SubscribeToEvent(tenantID, catalogID, eventID uuid.UUID) (*EventSubscriptionResponse, error)
	SetEventVisibility(tenantID, catalogID, eventID uuid.UUID, req *SetEventVisibilityRequest) (*EventSubscriptionResponse, error)
	UnsubscribeFromEvent(tenantID, catalogID, eventID uuid.UUID) error
}

// CatalogServiceInterface defines the interface for catalog service
type CatalogServiceInterface interface {
	CreateCatalog(req *CreateCatalogRequest) (*CatalogResponse, error)
	GetCatalog(id uuid.UUID) (*CatalogResponse, error)
	GetCatalogStats() (*CatalogStatsResponse, error)
	ListCatalogs(activeOnly bool) ([]CatalogResponse, error)
	UpdateCatalog(id uuid.UUID, req *UpdateCatalogRequest) (*CatalogResponse, error)
	DeleteCatalog(id uuid.UUID) error
	ListCatalogEvents(catalogID uuid.UUID, page, pageSize int) (*CatalogEventListResponse, error)
	GetCatalogEvent(eventID uuid.UUID) (*CatalogEventResponse, error)
	CreateCatalogEvent(catalogID uuid.UUID, req *CatalogEventRequest) (*CatalogEventResponse, error)
	BulkCreateCatalogEvents(catalogID uuid.UUID, req *BulkCatalogEventRequest) (*BulkCreateResponse, error)
	UpdateCatalogEvent(eventID uuid.UUID, req *CatalogEventRequest) (*CatalogEventResponse, error)
	DeleteCatalogEvent(eventID uuid.UUID) error
}

// OrganizationEventServiceInterface defines the interface for organization event service
type OrganizationEventServiceInterface interface {
	Create(tenantID uuid.UUID, createdBy *uuid.UUID, req *OrganizationEventRequest) (*OrganizationEventResponse, error)
	BulkCreate(tenantID uuid.UUID, createdBy *uuid.UUID, req *BulkOrganizationEventRequest) (*BulkCreateResponse, error)
	GetByID(tenantID, id uuid.UUID) (*OrganizationEventResponse, error)
	List(tenantID uuid.UUID, page, pageSize int) (*OrganizationEventListResponse, error)
	Update(tenantID, id uuid.UUID, req *OrganizationEventRequest) (*OrganizationEventResponse, error)
	Delete(tenantID, id uuid.UUID) error
}

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	Create(req *CreateTenantRequest) (*TenantResponse, error)
	GetByID(id uuid.UUID) (*TenantResponse, error)
	GetStats(id uuid.UUID) (*TenantStatsResponse, error)
	GetAll(page, pageSize int) (*TenantListResponse, error)
	Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error)
	Delete(id uuid.UUID) error
}

var (
	_ CalendarServiceInterface          = (*CalendarService)(nil)
	_ SubscriptionServiceInterface      = (*SubscriptionService)(nil)
	_ CatalogServiceInterface           = (*CatalogService)(nil)
	_ OrganizationEventServiceInterface = (*OrganizationEventService)(nil)
	_ TenantServiceInterface            = (*TenantService)(nil)
)
