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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrganizationEventService manages a tenant's private events
type OrganizationEventService struct {
	repo      repository.OrganizationEventRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationEventService creates a new organization event service
func NewOrganizationEventService(repo repository.OrganizationEventRepositoryInterface, validator *validator.Validate) *OrganizationEventService {
	return &OrganizationEventService{
		repo:      repo,
		validator: validator,
	}
}

// OrganizationEventRequest represents the request to create or replace an organization event
type OrganizationEventRequest struct {
	Title          string          `json:"title" validate:"required,min=1,max=255"`
	Description    string          `json:"description"`
	StartDate      time.Time       `json:"startDate" validate:"required"`
	EndDate        time.Time       `json:"endDate" validate:"required"`
	IsRecurring    bool            `json:"isRecurring"`
	RecurrenceRule *string         `json:"recurrenceRule"`
	Tags           []string        `json:"tags" validate:"omitempty,dive,min=1,max=100"`
	Metadata       json.RawMessage `json:"metadata" swaggertype:"object"`
}

// BulkOrganizationEventRequest represents the request to create many organization events at once
type BulkOrganizationEventRequest struct {
	Events []OrganizationEventRequest `json:"events" validate:"required,min=1,max=500,dive"`
}

// OrganizationEventResponse represents an organization event
type OrganizationEventResponse struct {
	ID             uuid.UUID         `json:"id"`
	TenantID       uuid.UUID         `json:"tenantId"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	StartDate      time.Time         `json:"startDate"`
	EndDate        time.Time         `json:"endDate"`
	IsRecurring    bool              `json:"isRecurring"`
	RecurrenceRule *string           `json:"recurrenceRule"`
	Tags           []string          `json:"tags"`
	Metadata       datatypes.JSON    `json:"metadata" swaggertype:"object"`
	CreatedBy      *calendar.Creator `json:"createdBy"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// OrganizationEventListResponse represents a paginated list of organization events
type OrganizationEventListResponse struct {
	Events []OrganizationEventResponse `json:"events"`
	PageInfo
}

// Create creates an event for a tenant, recording its creator
func (s *OrganizationEventService) Create(tenantID uuid.UUID, createdBy *uuid.UUID, req *OrganizationEventRequest) (*OrganizationEventResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	event := &models.OrganizationEvent{
		TenantID:    tenantID,
		CreatedByID: createdBy,
	}
	applyOrganizationEventRequest(event, req)

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create organization event: %w", err)
	}

	return toOrganizationEventResponse(event), nil
}

// BulkCreate creates every event of the request for a tenant, or none of them
func (s *OrganizationEventService) BulkCreate(tenantID uuid.UUID, createdBy *uuid.UUID, req *BulkOrganizationEventRequest) (*BulkCreateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	events := make([]models.OrganizationEvent, len(req.Events))
	for i := range req.Events {
		if err := s.validateEvent(&req.Events[i]); err != nil {
			return nil, inBatch(i, err)
		}
		events[i].TenantID = tenantID
		events[i].CreatedByID = createdBy
		applyOrganizationEventRequest(&events[i], &req.Events[i])
	}

	count, err := s.repo.CreateBatch(events)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization events: %w", err)
	}
	return &BulkCreateResponse{Count: count}, nil
}

// GetByID retrieves one of a tenant's events
func (s *OrganizationEventService) GetByID(tenantID, id uuid.UUID) (*OrganizationEventResponse, error) {
	event, err := s.owned(tenantID, id)
	if err != nil {
		return nil, err
	}
	return toOrganizationEventResponse(event), nil
}

// List lists a tenant's events by start date
func (s *OrganizationEventService) List(tenantID uuid.UUID, page, pageSize int) (*OrganizationEventListResponse, error) {
	page, pageSize, offset := normalizePage(page, pageSize)
	events, total, err := s.repo.GetByTenantID(tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization events: %w", err)
	}

	responses := make([]OrganizationEventResponse, len(events))
	for i := range events {
		responses[i] = *toOrganizationEventResponse(&events[i])
	}

	return &OrganizationEventListResponse{
		Events:   responses,
		PageInfo: PageInfo{Total: total, Page: page, PageSize: pageSize},
	}, nil
}

// Update replaces the fields of one of a tenant's events
func (s *OrganizationEventService) Update(tenantID, id uuid.UUID, req *OrganizationEventRequest) (*OrganizationEventResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	event, err := s.owned(tenantID, id)
	if err != nil {
		return nil, err
	}

	applyOrganizationEventRequest(event, req)
	if err := s.repo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update organization event: %w", err)
	}

	return toOrganizationEventResponse(event), nil
}

// Delete deletes one of a tenant's events
func (s *OrganizationEventService) Delete(tenantID, id uuid.UUID) error {
	if _, err := s.owned(tenantID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization event: %w", err)
	}
	return nil
}

// owned loads an event and hides events of other tenants as not found
func (s *OrganizationEventService) owned(tenantID, id uuid.UUID) (*models.OrganizationEvent, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationEventNotFound
		}
		return nil, fmt.Errorf("failed to get organization event: %w", err)
	}
	if event.TenantID != tenantID {
		return nil, apperrors.ErrOrganizationEventNotFound
	}
	return event, nil
}

func (s *OrganizationEventService) validate(req *OrganizationEventRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationFailed(err)
	}
	return s.validateEvent(req)
}

// validateEvent checks what struct tags cannot express
func (s *OrganizationEventService) validateEvent(req *OrganizationEventRequest) error {
	if err := checkTimeRange(req.StartDate, req.EndDate); err != nil {
		return err
	}
	return validateRecurrence(req.IsRecurring, req.RecurrenceRule)
}

func applyOrganizationEventRequest(event *models.OrganizationEvent, req *OrganizationEventRequest) {
	event.Title = req.Title
	event.Description = req.Description
	event.StartDate = req.StartDate.UTC()
	event.EndDate = req.EndDate.UTC()
	event.IsRecurring = req.IsRecurring
	event.RecurrenceRule = req.RecurrenceRule
	event.Tags = nonNilTags(req.Tags)
	event.Metadata = toJSON(req.Metadata)
}

func toOrganizationEventResponse(event *models.OrganizationEvent) *OrganizationEventResponse {
	unified := calendar.FromOrganizationEvent(*event)
	return &OrganizationEventResponse{
		ID:             event.ID,
		TenantID:       event.TenantID,
		Title:          event.Title,
		Description:    event.Description,
		StartDate:      event.StartDate,
		EndDate:        event.EndDate,
		IsRecurring:    event.IsRecurring,
		RecurrenceRule: event.RecurrenceRule,
		Tags:           unified.Tags,
		Metadata:       event.Metadata,
		CreatedBy:      unified.SourceDetails.CreatedBy,
		CreatedAt:      event.CreatedAt,
		UpdatedAt:      event.UpdatedAt,
	}
}
