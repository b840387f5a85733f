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
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// TenantService handles business logic for tenants
type TenantService struct {
	repo           repository.TenantRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	catalogSubRepo repository.CatalogSubscriptionRepositoryInterface
	eventSubRepo   repository.EventSubscriptionRepositoryInterface
	orgEventRepo   repository.OrganizationEventRepositoryInterface
	validator      *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(
	repo repository.TenantRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	catalogSubRepo repository.CatalogSubscriptionRepositoryInterface,
	eventSubRepo repository.EventSubscriptionRepositoryInterface,
	orgEventRepo repository.OrganizationEventRepositoryInterface,
	validator *validator.Validate,
) *TenantService {
	return &TenantService{
		repo:           repo,
		userRepo:       userRepo,
		catalogSubRepo: catalogSubRepo,
		eventSubRepo:   eventSubRepo,
		orgEventRepo:   orgEventRepo,
		validator:      validator,
	}
}

// CreateTenantRequest represents the request to create a tenant
type CreateTenantRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Slug     string `json:"slug" validate:"required,max=100"`
	Industry string `json:"industry" validate:"max=100"`
	Country  string `json:"country" validate:"max=100"`
}

// UpdateTenantRequest represents the request to update a tenant
type UpdateTenantRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Industry *string `json:"industry" validate:"omitempty,max=100"`
	Country  *string `json:"country" validate:"omitempty,max=100"`
	IsActive *bool   `json:"isActive"`
}

// TenantResponse represents the response for tenant operations
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Industry  string    `json:"industry"`
	Country   string    `json:"country"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TenantStatsResponse summarizes the members and calendar sources of a tenant
type TenantStatsResponse struct {
	TotalUsers           int64          `json:"totalUsers"`
	ActiveUsers          int64          `json:"activeUsers"`
	CatalogSubscriptions int64          `json:"catalogSubscriptions"`
	EventSubscriptions   int64          `json:"eventSubscriptions"`
	OrganizationEvents   int64          `json:"organizationEvents"`
	Tenant               TenantResponse `json:"tenantInfo"`
}

// TenantListResponse represents a paginated list of tenants
type TenantListResponse struct {
	Tenants []TenantResponse `json:"tenants"`
	PageInfo
}

// Create creates a new tenant
func (s *TenantService) Create(req *CreateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	existing, err := s.repo.GetBySlug(req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTenantExists
	}

	tenant := &models.Tenant{
		Name:     req.Name,
		Slug:     req.Slug,
		Industry: req.Industry,
		Country:  req.Country,
		IsActive: true,
	}
	if err := s.repo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return toTenantResponse(tenant), nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// GetAll retrieves all tenants with pagination
func (s *TenantService) GetAll(page, pageSize int) (*TenantListResponse, error) {
	page, pageSize, offset := normalizePage(page, pageSize)
	tenants, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *toTenantResponse(&tenants[i])
	}

	return &TenantListResponse{
		Tenants:  responses,
		PageInfo: PageInfo{Total: total, Page: page, PageSize: pageSize},
	}, nil
}

// Update updates a tenant
func (s *TenantService) Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	tenant, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Industry != nil {
		tenant.Industry = *req.Industry
	}
	if req.Country != nil {
		tenant.Country = *req.Country
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}

	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return toTenantResponse(tenant), nil
}

// Delete deletes a tenant that has no users left
func (s *TenantService) Delete(id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}

	users, err := s.userRepo.CountByTenantID(id)
	if err != nil {
		return fmt.Errorf("failed to count organization users: %w", err)
	}
	if users > 0 {
		return apperrors.ErrTenantHasUsers
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}

// GetStats counts a tenant's users, active subscriptions, visible event
// subscriptions and own events
func (s *TenantService) GetStats(id uuid.UUID) (*TenantStatsResponse, error) {
	tenant, err := s.get(id)
	if err != nil {
		return nil, err
	}

	stats := &TenantStatsResponse{Tenant: *toTenantResponse(tenant)}
	counters := []struct {
		target *int64
		count  func(uuid.UUID) (int64, error)
		what   string
	}{
		{&stats.TotalUsers, s.userRepo.CountByTenantID, "users"},
		{&stats.ActiveUsers, s.userRepo.CountActiveByTenantID, "active users"},
		{&stats.CatalogSubscriptions, s.catalogSubRepo.CountActiveByTenantID, "catalog subscriptions"},
		{&stats.EventSubscriptions, s.eventSubRepo.CountVisibleByTenantID, "event subscriptions"},
		{&stats.OrganizationEvents, s.orgEventRepo.CountByTenantID, "organization events"},
	}

	var g errgroup.Group
	for _, c := range counters {
		g.Go(func() error {
			n, err := c.count(id)
			if err != nil {
				return fmt.Errorf("failed to count organization %s: %w", c.what, err)
			}
			*c.target = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *TenantService) get(id uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return tenant, nil
}

func toTenantResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Slug:      tenant.Slug,
		Industry:  tenant.Industry,
		Country:   tenant.Country,
		IsActive:  tenant.IsActive,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}
