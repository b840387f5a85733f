package service

import (
	"errors"
	"fmt"
	"time"

	"tenant-calendar-backend/internal/database/models"
	apperrors "tenant-calendar-backend/internal/errors"
	"tenant-calendar-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionService manages a tenant's catalog and event subscriptions
type SubscriptionService struct {
	tenantRepo     repository.TenantRepositoryInterface
	catalogRepo    repository.CatalogRepositoryInterface
	eventRepo      repository.CatalogEventRepositoryInterface
	catalogSubRepo repository.CatalogSubscriptionRepositoryInterface
	eventSubRepo   repository.EventSubscriptionRepositoryInterface
	validator      *validator.Validate
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	tenantRepo repository.TenantRepositoryInterface,
	catalogRepo repository.CatalogRepositoryInterface,
	eventRepo repository.CatalogEventRepositoryInterface,
	catalogSubRepo repository.CatalogSubscriptionRepositoryInterface,
	eventSubRepo repository.EventSubscriptionRepositoryInterface,
	validator *validator.Validate,
) *SubscriptionService {
	return &SubscriptionService{
		tenantRepo:     tenantRepo,
		catalogRepo:    catalogRepo,
		eventRepo:      eventRepo,
		catalogSubRepo: catalogSubRepo,
		eventSubRepo:   eventSubRepo,
		validator:      validator,
	}
}

// SubscribeToCatalogRequest represents the request to subscribe to a catalog
type SubscribeToCatalogRequest struct {
	CatalogID uuid.UUID `json:"catalogId" validate:"required"`
}

// UpdateCatalogSubscriptionRequest represents the request to toggle a catalog subscription
type UpdateCatalogSubscriptionRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// SetEventVisibilityRequest represents the request to show or hide a catalog event
type SetEventVisibilityRequest struct {
	IsVisible *bool `json:"isVisible" validate:"required"`
}

// CatalogSubscriptionResponse represents a catalog subscription with its catalog
type CatalogSubscriptionResponse struct {
	ID           uuid.UUID        `json:"id"`
	TenantID     uuid.UUID        `json:"tenantId"`
	CatalogID    uuid.UUID        `json:"catalogId"`
	IsActive     bool             `json:"isActive"`
	SubscribedAt time.Time        `json:"subscribedAt"`
	Catalog      *CatalogResponse `json:"catalog,omitempty"`
}

// EventSubscriptionResponse represents an event subscription with its event
type EventSubscriptionResponse struct {
	ID             uuid.UUID             `json:"id"`
	TenantID       uuid.UUID             `json:"tenantId"`
	CatalogEventID uuid.UUID             `json:"catalogEventId"`
	IsVisible      bool                  `json:"isVisible"`
	SubscribedAt   time.Time             `json:"subscribedAt"`
	Event          *CatalogEventResponse `json:"event,omitempty"`
}

// EventSubscriptionStatusResponse tells whether and how a tenant sees a catalog event
type EventSubscriptionStatusResponse struct {
	IsSubscribed      bool       `json:"isSubscribed"`
	IsVisible         bool       `json:"isVisible"`
	CatalogSubscribed bool       `json:"catalogSubscribed"`
	SubscribedAt      *time.Time `json:"subscribedAt"`
}

// ListCatalogSubscriptions returns a tenant's catalog subscriptions, newest first
func (s *SubscriptionService) ListCatalogSubscriptions(tenantID uuid.UUID) ([]CatalogSubscriptionResponse, error) {
	subs, err := s.catalogSubRepo.GetByTenantID(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog subscriptions: %w", err)
	}

	catalogIDs := make([]uuid.UUID, len(subs))
	for i, sub := range subs {
		catalogIDs[i] = sub.CatalogID
	}
	counts, err := s.eventRepo.CountByCatalogIDs(catalogIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog events: %w", err)
	}

	responses := make([]CatalogSubscriptionResponse, len(subs))
	for i := range subs {
		responses[i] = *toCatalogSubscriptionResponse(&subs[i], counts)
	}
	return responses, nil
}

// ListAvailableCatalogs returns the active catalogs a tenant has not subscribed to
func (s *SubscriptionService) ListAvailableCatalogs(tenantID uuid.UUID) ([]CatalogResponse, error) {
	catalogs, err := s.catalogRepo.GetAvailableForTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get available catalogs: %w", err)
	}

	responses := make([]CatalogResponse, len(catalogs))
	for i := range catalogs {
		responses[i] = *toCatalogResponse(&catalogs[i], nil)
	}
	return responses, nil
}

// SubscribeToCatalog subscribes a tenant to an active catalog
func (s *SubscriptionService) SubscribeToCatalog(tenantID uuid.UUID, req *SubscribeToCatalogRequest) (*CatalogSubscriptionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	if err := s.ensureTenant(tenantID); err != nil {
		return nil, err
	}

	catalog, err := s.catalogRepo.GetByID(req.CatalogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCatalogNotFound
		}
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}
	if !catalog.IsActive {
		return nil, apperrors.ErrCatalogInactive
	}

	existing, err := s.catalogSubRepo.GetByTenantAndCatalog(tenantID, req.CatalogID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing subscription: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCatalogSubscriptionExists
	}

	sub := &models.CatalogSubscription{
		TenantID:     tenantID,
		CatalogID:    req.CatalogID,
		IsActive:     true,
		SubscribedAt: time.Now().UTC(),
	}
	if err := s.catalogSubRepo.Create(sub); err != nil {
		return nil, fmt.Errorf("failed to create catalog subscription: %w", err)
	}
	sub.Catalog = catalog

	return toCatalogSubscriptionResponse(sub, nil), nil
}

// UpdateCatalogSubscription activates or deactivates a tenant's catalog subscription
func (s *SubscriptionService) UpdateCatalogSubscription(tenantID, subscriptionID uuid.UUID, req *UpdateCatalogSubscriptionRequest) (*CatalogSubscriptionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	sub, err := s.ownedCatalogSubscription(tenantID, subscriptionID)
	if err != nil {
		return nil, err
	}

	if err := s.catalogSubRepo.UpdateActive(sub.ID, *req.IsActive); err != nil {
		return nil, fmt.Errorf("failed to update catalog subscription: %w", err)
	}
	sub.IsActive = *req.IsActive

	return toCatalogSubscriptionResponse(sub, nil), nil
}

// UnsubscribeFromCatalog removes a tenant's catalog subscription
func (s *SubscriptionService) UnsubscribeFromCatalog(tenantID, subscriptionID uuid.UUID) error {
	sub, err := s.ownedCatalogSubscription(tenantID, subscriptionID)
	if err != nil {
		return err
	}

	if err := s.catalogSubRepo.Delete(sub.ID); err != nil {
		return fmt.Errorf("failed to delete catalog subscription: %w", err)
	}
	return nil
}

// ListEventSubscriptions returns a tenant's event subscriptions with their events
func (s *SubscriptionService) ListEventSubscriptions(tenantID uuid.UUID) ([]EventSubscriptionResponse, error) {
	subs, err := s.eventSubRepo.GetByTenantID(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event subscriptions: %w", err)
	}

	responses := make([]EventSubscriptionResponse, len(subs))
	for i := range subs {
		responses[i] = *toEventSubscriptionResponse(&subs[i])
	}
	return responses, nil
}

// GetEventSubscriptionStatus reports whether a tenant subscribed to an event
// and whether it sees it through its catalog.
func (s *SubscriptionService) GetEventSubscriptionStatus(tenantID, catalogID, eventID uuid.UUID) (*EventSubscriptionStatusResponse, error) {
	if _, err := s.catalogEvent(catalogID, eventID); err != nil {
		return nil, err
	}

	status := &EventSubscriptionStatusResponse{}

	catalogSub, err := s.catalogSubRepo.GetByTenantAndCatalog(tenantID, catalogID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get catalog subscription: %w", err)
	}
	status.CatalogSubscribed = catalogSub != nil && catalogSub.IsActive

	sub, err := s.eventSubRepo.GetByTenantAndEvent(tenantID, eventID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get event subscription: %w", err)
	}
	if sub != nil {
		status.IsSubscribed = true
		status.IsVisible = sub.IsVisible
		subscribedAt := sub.SubscribedAt
		status.SubscribedAt = &subscribedAt
	} else {
		status.IsVisible = status.CatalogSubscribed
	}

	return status, nil
}

// SubscribeToEvent subscribes a tenant to a single catalog event
func (s *SubscriptionService) SubscribeToEvent(tenantID, catalogID, eventID uuid.UUID) (*EventSubscriptionResponse, error) {
	if err := s.ensureTenant(tenantID); err != nil {
		return nil, err
	}
	event, err := s.catalogEvent(catalogID, eventID)
	if err != nil {
		return nil, err
	}

	existing, err := s.eventSubRepo.GetByTenantAndEvent(tenantID, eventID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing subscription: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEventSubscriptionExists
	}

	sub := &models.EventSubscription{
		TenantID:       tenantID,
		CatalogEventID: eventID,
		IsVisible:      true,
		SubscribedAt:   time.Now().UTC(),
	}
	if err := s.eventSubRepo.Create(sub); err != nil {
		return nil, fmt.Errorf("failed to create event subscription: %w", err)
	}
	sub.CatalogEvent = event

	return toEventSubscriptionResponse(sub), nil
}

// SetEventVisibility shows or hides a catalog event for a tenant. Hiding an
// event of a subscribed catalog suppresses only that event.
func (s *SubscriptionService) SetEventVisibility(tenantID, catalogID, eventID uuid.UUID, req *SetEventVisibilityRequest) (*EventSubscriptionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if err := s.ensureTenant(tenantID); err != nil {
		return nil, err
	}
	event, err := s.catalogEvent(catalogID, eventID)
	if err != nil {
		return nil, err
	}

	sub := &models.EventSubscription{
		TenantID:       tenantID,
		CatalogEventID: eventID,
		IsVisible:      *req.IsVisible,
		SubscribedAt:   time.Now().UTC(),
	}
	if err := s.eventSubRepo.Upsert(sub); err != nil {
		return nil, fmt.Errorf("failed to set event visibility: %w", err)
	}

	// the upsert may have kept an existing row
	stored, err := s.eventSubRepo.GetByTenantAndEvent(tenantID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event subscription: %w", err)
	}
	stored.CatalogEvent = event

	return toEventSubscriptionResponse(stored), nil
}

// UnsubscribeFromEvent removes a tenant's subscription to a catalog event
func (s *SubscriptionService) UnsubscribeFromEvent(tenantID, catalogID, eventID uuid.UUID) error {
	if _, err := s.catalogEvent(catalogID, eventID); err != nil {
		return err
	}

	sub, err := s.eventSubRepo.GetByTenantAndEvent(tenantID, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventSubscriptionNotFound
		}
		return fmt.Errorf("failed to get event subscription: %w", err)
	}

	if err := s.eventSubRepo.Delete(sub.ID); err != nil {
		return fmt.Errorf("failed to delete event subscription: %w", err)
	}
	return nil
}

func (s *SubscriptionService) ensureTenant(tenantID uuid.UUID) error {
	if _, err := s.tenantRepo.GetByID(tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTenantNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}
	return nil
}

// catalogEvent loads an event and checks it belongs to catalogID
func (s *SubscriptionService) catalogEvent(catalogID, eventID uuid.UUID) (*models.CatalogEvent, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCatalogEventNotFound
		}
		return nil, fmt.Errorf("failed to get catalog event: %w", err)
	}
	if event.CatalogID != catalogID {
		return nil, apperrors.ErrEventNotInCatalog
	}
	return event, nil
}

func (s *SubscriptionService) ownedCatalogSubscription(tenantID, subscriptionID uuid.UUID) (*models.CatalogSubscription, error) {
	sub, err := s.catalogSubRepo.GetByID(subscriptionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCatalogSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get catalog subscription: %w", err)
	}
	if sub.TenantID != tenantID {
		return nil, apperrors.ErrSubscriptionNotOwned
	}
	return sub, nil
}

func toCatalogSubscriptionResponse(sub *models.CatalogSubscription, eventCounts map[uuid.UUID]int64) *CatalogSubscriptionResponse {
	resp := &CatalogSubscriptionResponse{
		ID:           sub.ID,
		TenantID:     sub.TenantID,
		CatalogID:    sub.CatalogID,
		IsActive:     sub.IsActive,
		SubscribedAt: sub.SubscribedAt,
	}
	if sub.Catalog != nil {
		resp.Catalog = toCatalogResponse(sub.Catalog, eventCounts)
	}
	return resp
}

func toEventSubscriptionResponse(sub *models.EventSubscription) *EventSubscriptionResponse {
	resp := &EventSubscriptionResponse{
		ID:             sub.ID,
		TenantID:       sub.TenantID,
		CatalogEventID: sub.CatalogEventID,
		IsVisible:      sub.IsVisible,
		SubscribedAt:   sub.SubscribedAt,
	}
	if sub.CatalogEvent != nil {
		resp.Event = toCatalogEventResponse(sub.CatalogEvent)
	}
	return resp
}
