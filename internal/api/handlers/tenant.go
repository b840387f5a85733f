package handlers

import (
	"net/http"

	"tenant-calendar-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for organizations
type TenantHandler struct {
	tenantService service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// CreateTenant handles POST /tenants
// @Summary Create an organization
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.CreateTenantRequest true "Organization data"
// @Success 201 {object} service.TenantResponse "Created organization"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 409 {object} ErrorResponse "Slug already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req service.CreateTenantRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenantService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// GetTenant handles GET /tenants/:tenantId
// @Summary Get an organization
// @Tags tenants
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Success 200 {object} service.TenantResponse "Organization"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// GetTenantStats handles GET /tenants/:tenantId/stats
// @Summary Organization statistics
// @Description User counts, active subscriptions, visible event subscriptions and own events
// @Tags tenants
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Success 200 {object} service.TenantStatsResponse "Organization statistics"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/stats [get]
func (h *TenantHandler) GetTenantStats(c *gin.Context) {
	id, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}

	stats, err := h.tenantService.GetStats(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListTenants handles GET /tenants
// @Summary List organizations
// @Tags tenants
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} service.TenantListResponse "Organizations"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	page, pageSize := pagination(c)

	tenants, err := h.tenantService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// UpdateTenant handles PUT /tenants/:tenantId
// @Summary Update an organization
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Param tenant body service.UpdateTenantRequest true "Fields to change"
// @Success 200 {object} service.TenantResponse "Updated organization"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}

	var req service.UpdateTenantRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenantService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// DeleteTenant handles DELETE /tenants/:tenantId
// @Summary Delete an organization
// @Description Refused while the organization still has users
// @Tags tenants
// @Param tenantId path string true "Organization ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 409 {object} ErrorResponse "Organization still has users"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}

	if err := h.tenantService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
