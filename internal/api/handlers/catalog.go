package handlers

import (
	"net/http"
	"strconv"

	"tenant-calendar-backend/internal/auth"
	"tenant-calendar-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for catalogs and their events
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCatalogs handles GET /catalogs
// @Summary List catalogs
// @Description Only super admins may list inactive catalogs
// @Tags catalogs
// @Produce json
// @Param activeOnly query bool false "Only active catalogs" default(true)
// @Success 200 {array} service.CatalogResponse "Catalogs"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /catalogs [get]
func (h *CatalogHandler) ListCatalogs(c *gin.Context) {
	activeOnly, err := strconv.ParseBool(c.DefaultQuery("activeOnly", "true"))
	if err != nil {
		activeOnly = true
	}
	if identity, ok := auth.GetIdentity(c); !ok || !auth.Can(identity.Role, auth.CapCatalogManage) {
		activeOnly = true
	}

	catalogs, err := h.catalogService.ListCatalogs(activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, catalogs)
}

// GetCatalogStats handles GET /catalogs/stats
// @Summary Catalog statistics
// @Description Catalog counts by status and type, with the totals of catalog events and event subscriptions
// @Tags catalogs
// @Produce json
// @Success 200 {object} service.CatalogStatsResponse "Catalog statistics"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /catalogs/stats [get]
func (h *CatalogHandler) GetCatalogStats(c *gin.Context) {
	stats, err := h.catalogService.GetCatalogStats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetCatalog handles GET /catalogs/:id
// @Summary Get catalog by ID
// @Tags catalogs
// @Produce json
// @Param id path string true "Catalog ID (UUID)"
// @Success 200 {object} service.CatalogResponse "Catalog with its event count"
// @Failure 400 {object} ErrorResponse "Invalid catalog ID"
// @Failure 404 {object} ErrorResponse "Catalog not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /catalogs/{id} [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "catalog")
	if !ok {
		return
	}

	catalog, err := h.catalogService.GetCatalog(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// CreateCatalog handles POST /catalogs
// @Summary Create a catalog
// @Tags catalogs
// @Accept json
// @Produce json
// @Param catalog body service.CreateCatalogRequest true "Catalog data"
// @Success 201 {object} service.CatalogResponse "Created catalog"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /catalogs [post]
func (h *CatalogHandler) CreateCatalog(c *gin.Context) {
	var req service.CreateCatalogRequest
	if !bindJSON(c, &req) {
		return
	}

	catalog, err := h.catalogService.CreateCatalog(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, catalog)
}

// UpdateCatalog handles PUT /catalogs/:id
// @Summary Update a catalog
// @Tags catalogs
// @Accept json
// @Produce json
// @Param id path string true "Catalog ID (UUID)"
// @Param catalog body service.UpdateCatalogRequest true "Fields to change"
// @Success 200 {object} service.CatalogResponse "Updated catalog"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Catalog not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /catalogs/{id} [put]
func (h *CatalogHandler) UpdateCatalog(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "catalog")
	if !ok {
		return
	}

	var req service.UpdateCatalogRequest
	if !bindJSON(c, &req) {
		return
	}

	catalog, err := h.catalogService.UpdateCatalog(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// DeleteCatalog handles DELETE /catalogs/:id
// @Summary Delete a catalog
// @Tags catalogs
// @Param id path string true "Catalog ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid catalog ID"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Catalog not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /catalogs/{id} [delete]
func (h *CatalogHandler) DeleteCatalog(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "catalog")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteCatalog(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCatalogEvents handles GET /catalogs/:id/events
// @Summary List the events of a catalog
// @Tags catalogs
// @Produce json
// @Param id path string true "Catalog ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} service.CatalogEventListResponse "Catalog events"
// @Failure 400 {object} ErrorResponse "Invalid catalog ID"
// @Failure 404 {object} ErrorResponse "Catalog not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /catalogs/{id}/events [get]
func (h *CatalogHandler) ListCatalogEvents(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "catalog")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	events, err := h.catalogService.ListCatalogEvents(id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// CreateCatalogEvent handles POST /catalogs/:id/events
// @Summary Add an event to a catalog
// @Tags catalogs
// @Accept json
// @Produce json
// @Param id path string true "Catalog ID (UUID)"
// @Param event body service.CatalogEventRequest true "Event data"
// @Success 201 {object} service.CatalogEventResponse "Created event"
// @Failure 400 {object} ErrorResponse "Invalid request body or recurrence rule"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Catalog not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /catalogs/{id}/events [post]
func (h *CatalogHandler) CreateCatalogEvent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "catalog")
	if !ok {
		return
	}

	var req service.CatalogEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.catalogService.CreateCatalogEvent(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// BulkCreateCatalogEvents handles POST /catalogs/:id/events/bulk
// @Summary Add many events to a catalog
// @Description Stores all events or, if any is invalid, none
// @Tags catalogs
// @Accept json
// @Produce json
// @Param id path string true "Catalog ID (UUID)"
// @Param events body service.BulkCatalogEventRequest true "Events to add"
// @Success 201 {object} service.BulkCreateResponse "Number of events created"
// @Failure 400 {object} ErrorResponse "Invalid request body or event"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Catalog not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /catalogs/{id}/events/bulk [post]
func (h *CatalogHandler) BulkCreateCatalogEvents(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "catalog")
	if !ok {
		return
	}

	var req service.BulkCatalogEventRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.catalogService.BulkCreateCatalogEvents(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetCatalogEvent handles GET /catalogs/events/:eventId
// @Summary Get a catalog event
// @Tags catalogs
// @Produce json
// @Param eventId path string true "Catalog event ID (UUID)"
// @Success 200 {object} service.CatalogEventResponse "Event with its catalog name and type"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /catalogs/events/{eventId} [get]
func (h *CatalogHandler) GetCatalogEvent(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId", "event")
	if !ok {
		return
	}

	event, err := h.catalogService.GetCatalogEvent(eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateCatalogEvent handles PUT /catalogs/events/:eventId
// @Summary Replace a catalog event
// @Tags catalogs
// @Accept json
// @Produce json
// @Param eventId path string true "Catalog event ID (UUID)"
// @Param event body service.CatalogEventRequest true "Event data"
// @Success 200 {object} service.CatalogEventResponse "Updated event"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /catalogs/events/{eventId} [put]
func (h *CatalogHandler) UpdateCatalogEvent(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId", "event")
	if !ok {
		return
	}

	var req service.CatalogEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.catalogService.UpdateCatalogEvent(eventID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteCatalogEvent handles DELETE /catalogs/events/:eventId
// @Summary Delete a catalog event
// @Tags catalogs
// @Param eventId path string true "Catalog event ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /catalogs/events/{eventId} [delete]
func (h *CatalogHandler) DeleteCatalogEvent(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "eventId", "event")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteCatalogEvent(eventID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
