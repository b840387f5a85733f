package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tenant-calendar-backend/internal/calendar"
	"tenant-calendar-backend/internal/database/models"
	apperrors "tenant-calendar-backend/internal/errors"
	"tenant-calendar-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CatalogService manages catalogs and their events
type CatalogService struct {
	catalogRepo  repository.CatalogRepositoryInterface
	eventRepo    repository.CatalogEventRepositoryInterface
	eventSubRepo repository.EventSubscriptionRepositoryInterface
	validator    *validator.Validate
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepositoryInterface, eventRepo repository.CatalogEventRepositoryInterface, eventSubRepo repository.EventSubscriptionRepositoryInterface, validator *validator.Validate) *CatalogService {
	return &CatalogService{
		catalogRepo:  catalogRepo,
		eventRepo:    eventRepo,
		eventSubRepo: eventSubRepo,
		validator:    validator,
	}
}

// CreateCatalogRequest represents the request to create a catalog
type CreateCatalogRequest struct {
	Name        string             `json:"name" validate:"required,min=1,max=200"`
	Description string             `json:"description"`
	Type        models.CatalogType `json:"type" validate:"required,oneof=WORLD_SPECIAL_DAYS NATIONAL_HOLIDAYS REGIONAL_HOLIDAYS"`
	IsActive    *bool              `json:"isActive"`
}

// UpdateCatalogRequest represents the request to update a catalog
type UpdateCatalogRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string             `json:"description"`
	Type        *models.CatalogType `json:"type" validate:"omitempty,oneof=WORLD_SPECIAL_DAYS NATIONAL_HOLIDAYS REGIONAL_HOLIDAYS"`
	IsActive    *bool               `json:"isActive"`
}

// CatalogEventRequest represents the request to create or replace a catalog event
type CatalogEventRequest struct {
	Title          string          `json:"title" validate:"required,min=1,max=255"`
	Description    string          `json:"description"`
	StartDate      time.Time       `json:"startDate" validate:"required"`
	EndDate        time.Time       `json:"endDate" validate:"required"`
	IsRecurring    bool            `json:"isRecurring"`
	RecurrenceRule *string         `json:"recurrenceRule"`
	Tags           []string        `json:"tags" validate:"omitempty,dive,min=1,max=100"`
	Industries     []string        `json:"industries" validate:"omitempty,dive,min=1,max=100"`
	Country        *string         `json:"country" validate:"omitempty,max=100"`
	Region         *string         `json:"region" validate:"omitempty,max=100"`
	Metadata       json.RawMessage `json:"metadata" swaggertype:"object"`
}

// BulkCatalogEventRequest represents the request to add many events to a catalog at once
type BulkCatalogEventRequest struct {
	Events []CatalogEventRequest `json:"events" validate:"required,min=1,max=500,dive"`
}

// CatalogResponse represents a catalog
type CatalogResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Type        models.CatalogType `json:"type"`
	IsActive    bool               `json:"isActive"`
	EventCount  *int64             `json:"eventCount,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// CatalogEventResponse represents a catalog event
type CatalogEventResponse struct {
	ID             uuid.UUID          `json:"id"`
	CatalogID      uuid.UUID          `json:"catalogId"`
	CatalogName    string             `json:"catalogName,omitempty"`
	CatalogType    models.CatalogType `json:"catalogType,omitempty"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        time.Time          `json:"endDate"`
	IsRecurring    bool               `json:"isRecurring"`
	RecurrenceRule *string            `json:"recurrenceRule"`
	Tags           []string           `json:"tags"`
	Industries     []string           `json:"industries"`
	Country        *string            `json:"country"`
	Region         *string            `json:"region"`
	Metadata       datatypes.JSON     `json:"metadata" swaggertype:"object"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// CatalogEventListResponse represents a paginated list of catalog events
type CatalogEventListResponse struct {
	Events []CatalogEventResponse `json:"events"`
	PageInfo
}

// CatalogTypeCount is the number of catalogs of one type
type CatalogTypeCount struct {
	Type  models.CatalogType `json:"type"`
	Count int64              `json:"count"`
}

// CatalogStatsResponse summarizes the catalogs of the platform
type CatalogStatsResponse struct {
	TotalCatalogs      int64              `json:"totalCatalogs"`
	ActiveCatalogs     int64              `json:"activeCatalogs"`
	InactiveCatalogs   int64              `json:"inactiveCatalogs"`
	CatalogsByType     []CatalogTypeCount `json:"catalogsByType"`
	TotalEvents        int64              `json:"totalEvents"`
	TotalSubscriptions int64              `json:"totalSubscriptions"`
}

// CreateCatalog creates a new catalog
func (s *CatalogService) CreateCatalog(req *CreateCatalogRequest) (*CatalogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	catalog := &models.Catalog{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.catalogRepo.Create(catalog); err != nil {
		return nil, fmt.Errorf("failed to create catalog: %w", err)
	}

	return toCatalogResponse(catalog, nil), nil
}

// GetCatalog retrieves a catalog by ID
func (s *CatalogService) GetCatalog(id uuid.UUID) (*CatalogResponse, error) {
	catalog, err := s.getCatalog(id)
	if err != nil {
		return nil, err
	}

	counts, err := s.eventRepo.CountByCatalogIDs([]uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog events: %w", err)
	}

	return toCatalogResponse(catalog, counts), nil
}

// ListCatalogs lists catalogs by name, optionally only active ones
func (s *CatalogService) ListCatalogs(activeOnly bool) ([]CatalogResponse, error) {
	catalogs, err := s.catalogRepo.GetAll(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalogs: %w", err)
	}

	ids := make([]uuid.UUID, len(catalogs))
	for i, c := range catalogs {
		ids[i] = c.ID
	}
	counts, err := s.eventRepo.CountByCatalogIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog events: %w", err)
	}

	responses := make([]CatalogResponse, len(catalogs))
	for i := range catalogs {
		responses[i] = *toCatalogResponse(&catalogs[i], counts)
	}
	return responses, nil
}

// UpdateCatalog updates a catalog
func (s *CatalogService) UpdateCatalog(id uuid.UUID, req *UpdateCatalogRequest) (*CatalogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	catalog, err := s.getCatalog(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		catalog.Name = *req.Name
	}
	if req.Description != nil {
		catalog.Description = *req.Description
	}
	if req.Type != nil {
		catalog.Type = *req.Type
	}
	if req.IsActive != nil {
		catalog.IsActive = *req.IsActive
	}

	if err := s.catalogRepo.Update(catalog); err != nil {
		return nil, fmt.Errorf("failed to update catalog: %w", err)
	}

	return toCatalogResponse(catalog, nil), nil
}

// DeleteCatalog deletes a catalog and its events
func (s *CatalogService) DeleteCatalog(id uuid.UUID) error {
	if _, err := s.getCatalog(id); err != nil {
		return err
	}

	if err := s.catalogRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete catalog: %w", err)
	}
	return nil
}

// ListCatalogEvents lists the events of a catalog by start date
func (s *CatalogService) ListCatalogEvents(catalogID uuid.UUID, page, pageSize int) (*CatalogEventListResponse, error) {
	if _, err := s.getCatalog(catalogID); err != nil {
		return nil, err
	}

	page, pageSize, offset := normalizePage(page, pageSize)
	events, total, err := s.eventRepo.GetByCatalogID(catalogID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog events: %w", err)
	}

	responses := make([]CatalogEventResponse, len(events))
	for i := range events {
		responses[i] = *toCatalogEventResponse(&events[i])
	}

	return &CatalogEventListResponse{
		Events:   responses,
		PageInfo: PageInfo{Total: total, Page: page, PageSize: pageSize},
	}, nil
}

// CreateCatalogEvent adds an event to a catalog
func (s *CatalogService) CreateCatalogEvent(catalogID uuid.UUID, req *CatalogEventRequest) (*CatalogEventResponse, error) {
	if err := s.validateEvent(req); err != nil {
		return nil, err
	}

	catalog, err := s.getCatalog(catalogID)
	if err != nil {
		return nil, err
	}

	event := &models.CatalogEvent{CatalogID: catalogID}
	applyCatalogEventRequest(event, req)
	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create catalog event: %w", err)
	}
	event.Catalog = catalog

	return toCatalogEventResponse(event), nil
}

// BulkCreateCatalogEvents adds every event of the request to a catalog, or none of them
func (s *CatalogService) BulkCreateCatalogEvents(catalogID uuid.UUID, req *BulkCatalogEventRequest) (*BulkCreateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	for i := range req.Events {
		if err := s.validateEvent(&req.Events[i]); err != nil {
			return nil, inBatch(i, err)
		}
	}

	if _, err := s.getCatalog(catalogID); err != nil {
		return nil, err
	}

	events := make([]models.CatalogEvent, len(req.Events))
	for i := range req.Events {
		events[i].CatalogID = catalogID
		applyCatalogEventRequest(&events[i], &req.Events[i])
	}

	count, err := s.eventRepo.CreateBatch(events)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog events: %w", err)
	}
	return &BulkCreateResponse{Count: count}, nil
}

// GetCatalogEvent retrieves a catalog event with the name and type of its catalog
func (s *CatalogService) GetCatalogEvent(eventID uuid.UUID) (*CatalogEventResponse, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCatalogEventNotFound
		}
		return nil, fmt.Errorf("failed to get catalog event: %w", err)
	}
	return toCatalogEventResponse(event), nil
}

// UpdateCatalogEvent replaces the fields of a catalog event
func (s *CatalogService) UpdateCatalogEvent(eventID uuid.UUID, req *CatalogEventRequest) (*CatalogEventResponse, error) {
	if err := s.validateEvent(req); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCatalogEventNotFound
		}
		return nil, fmt.Errorf("failed to get catalog event: %w", err)
	}

	applyCatalogEventRequest(event, req)
	if err := s.eventRepo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update catalog event: %w", err)
	}

	return toCatalogEventResponse(event), nil
}

// DeleteCatalogEvent deletes a catalog event
func (s *CatalogService) DeleteCatalogEvent(eventID uuid.UUID) error {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCatalogEventNotFound
		}
		return fmt.Errorf("failed to get catalog event: %w", err)
	}

	if err := s.eventRepo.Delete(eventID); err != nil {
		return fmt.Errorf("failed to delete catalog event: %w", err)
	}
	return nil
}

// GetCatalogStats counts catalogs by type and status along with all catalog
// events and event subscriptions
func (s *CatalogService) GetCatalogStats() (*CatalogStatsResponse, error) {
	var (
		g            errgroup.Group
		counts       []repository.CatalogCount
		events, subs int64
	)
	g.Go(func() (err error) {
		if counts, err = s.catalogRepo.CountByTypeAndStatus(); err != nil {
			return fmt.Errorf("failed to count catalogs: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if events, err = s.eventRepo.Count(); err != nil {
			return fmt.Errorf("failed to count catalog events: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if subs, err = s.eventSubRepo.Count(); err != nil {
			return fmt.Errorf("failed to count event subscriptions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &CatalogStatsResponse{TotalEvents: events, TotalSubscriptions: subs}
	byType := make(map[models.CatalogType]int64, len(models.CatalogTypes))
	for _, c := range counts {
		stats.TotalCatalogs += c.Count
		if c.IsActive {
			stats.ActiveCatalogs += c.Count
		}
		byType[c.Type] += c.Count
	}
	stats.InactiveCatalogs = stats.TotalCatalogs - stats.ActiveCatalogs

	stats.CatalogsByType = make([]CatalogTypeCount, len(models.CatalogTypes))
	for i, t := range models.CatalogTypes {
		stats.CatalogsByType[i] = CatalogTypeCount{Type: t, Count: byType[t]}
	}
	return stats, nil
}

func (s *CatalogService) getCatalog(id uuid.UUID) (*models.Catalog, error) {
	catalog, err := s.catalogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCatalogNotFound
		}
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}
	return catalog, nil
}

func (s *CatalogService) validateEvent(req *CatalogEventRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationFailed(err)
	}
	if err := checkTimeRange(req.StartDate, req.EndDate); err != nil {
		return err
	}
	return validateRecurrence(req.IsRecurring, req.RecurrenceRule)
}

// validateRecurrence requires a parseable rule on recurring events
func validateRecurrence(isRecurring bool, rule *string) error {
	if rule == nil || *rule == "" {
		if isRecurring {
			return apperrors.ErrInvalidRecurrenceRule
		}
		return nil
	}
	return calendar.ValidateRecurrenceRule(*rule)
}

func applyCatalogEventRequest(event *models.CatalogEvent, req *CatalogEventRequest) {
	event.Title = req.Title
	event.Description = req.Description
	event.StartDate = req.StartDate.UTC()
	event.EndDate = req.EndDate.UTC()
	event.IsRecurring = req.IsRecurring
	event.RecurrenceRule = req.RecurrenceRule
	event.Tags = nonNilTags(req.Tags)
	event.Industries = nonNilTags(req.Industries)
	event.Country = req.Country
	event.Region = req.Region
	event.Metadata = toJSON(req.Metadata)
}

func toCatalogResponse(catalog *models.Catalog, eventCounts map[uuid.UUID]int64) *CatalogResponse {
	resp := &CatalogResponse{
		ID:          catalog.ID,
		Name:        catalog.Name,
		Description: catalog.Description,
		Type:        catalog.Type,
		IsActive:    catalog.IsActive,
		CreatedAt:   catalog.CreatedAt,
		UpdatedAt:   catalog.UpdatedAt,
	}
	if eventCounts != nil {
		count := eventCounts[catalog.ID]
		resp.EventCount = &count
	}
	return resp
}

func toCatalogEventResponse(event *models.CatalogEvent) *CatalogEventResponse {
	resp := &CatalogEventResponse{
		ID:             event.ID,
		CatalogID:      event.CatalogID,
		Title:          event.Title,
		Description:    event.Description,
		StartDate:      event.StartDate,
		EndDate:        event.EndDate,
		IsRecurring:    event.IsRecurring,
		RecurrenceRule: event.RecurrenceRule,
		Tags:           nonNilTags(event.Tags),
		Industries:     nonNilTags(event.Industries),
		Country:        event.Country,
		Region:         event.Region,
		Metadata:       event.Metadata,
		CreatedAt:      event.CreatedAt,
	}
	if event.Catalog != nil {
		resp.CatalogName = event.Catalog.Name
		resp.CatalogType = event.Catalog.Type
	}
	return resp
}
