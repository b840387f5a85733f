package handlers

import (
	"net/http"

	"tenant-calendar-backend/internal/auth"
	"tenant-calendar-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationEventHandler handles HTTP requests for an organization's own events
type OrganizationEventHandler struct {
	eventService service.OrganizationEventServiceInterface
}

// NewOrganizationEventHandler creates a new organization event handler
func NewOrganizationEventHandler(eventService service.OrganizationEventServiceInterface) *OrganizationEventHandler {
	return &OrganizationEventHandler{eventService: eventService}
}

// CreateEvent handles POST /tenants/:tenantId/events
// @Summary Create an organization event
// @Tags organization-events
// @Accept json
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Param event body service.OrganizationEventRequest true "Event data"
// @Success 201 {object} service.OrganizationEventResponse "Created event"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/events [post]
func (h *OrganizationEventHandler) CreateEvent(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}

	var req service.OrganizationEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.eventService.Create(tenantID, creator(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// BulkCreateEvents handles POST /tenants/:tenantId/events/bulk
// @Summary Create many organization events
// @Description Admins only. Stores all events or, if any is invalid, none
// @Tags organization-events
// @Accept json
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Param events body service.BulkOrganizationEventRequest true "Events to create"
// @Success 201 {object} service.BulkCreateResponse "Number of events created"
// @Failure 400 {object} ErrorResponse "Invalid request body or event"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/events/bulk [post]
func (h *OrganizationEventHandler) BulkCreateEvents(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}

	var req service.BulkOrganizationEventRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.eventService.BulkCreate(tenantID, creator(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetEvent handles GET /tenants/:tenantId/events/:id
// @Summary Get an organization event
// @Tags organization-events
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} service.OrganizationEventResponse "Event"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/events/{id} [get]
func (h *OrganizationEventHandler) GetEvent(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// ListEvents handles GET /tenants/:tenantId/events
// @Summary List organization events
// @Tags organization-events
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} service.OrganizationEventListResponse "Events"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/events [get]
func (h *OrganizationEventHandler) ListEvents(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	events, err := h.eventService.List(tenantID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// UpdateEvent handles PUT /tenants/:tenantId/events/:id
// @Summary Update an organization event
// @Tags organization-events
// @Accept json
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Param id path string true "Event ID (UUID)"
// @Param event body service.OrganizationEventRequest true "Event data"
// @Success 200 {object} service.OrganizationEventResponse "Updated event"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/events/{id} [put]
func (h *OrganizationEventHandler) UpdateEvent(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	var req service.OrganizationEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.eventService.Update(tenantID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /tenants/:tenantId/events/:id
// @Summary Delete an organization event
// @Tags organization-events
// @Param tenantId path string true "Organization ID (UUID)"
// @Param id path string true "Event ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/events/{id} [delete]
func (h *OrganizationEventHandler) DeleteEvent(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	if err := h.eventService.Delete(tenantID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func creator(c *gin.Context) *uuid.UUID {
	if identity, ok := auth.GetIdentity(c); ok {
		return &identity.UserID
	}
	return nil
}
