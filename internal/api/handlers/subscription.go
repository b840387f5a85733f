package handlers

import (
	"net/http"

	"tenant-calendar-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubscriptionHandler handles catalog and event subscriptions of an organization
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionServiceInterface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionService service.SubscriptionServiceInterface) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// ListCatalogSubscriptions handles GET /tenants/:tenantId/subscriptions
// @Summary List catalog subscriptions
// @Description List the catalog subscriptions of an organization, newest first
// @Tags subscriptions
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Success 200 {array} service.CatalogSubscriptionResponse "Catalog subscriptions"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/subscriptions [get]
func (h *SubscriptionHandler) ListCatalogSubscriptions(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}

	subscriptions, err := h.subscriptionService.ListCatalogSubscriptions(tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// ListAvailableCatalogs handles GET /tenants/:tenantId/subscriptions/available
// @Summary List catalogs available for subscription
// @Description List active catalogs the organization is not subscribed to yet
// @Tags subscriptions
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Success 200 {array} service.CatalogResponse "Available catalogs"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/subscriptions/available [get]
func (h *SubscriptionHandler) ListAvailableCatalogs(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}

	catalogs, err := h.subscriptionService.ListAvailableCatalogs(tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, catalogs)
}

// SubscribeToCatalog handles POST /tenants/:tenantId/subscriptions
// @Summary Subscribe to a catalog
// @Description Subscribe the organization to an active catalog
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Param subscription body service.SubscribeToCatalogRequest true "Catalog to subscribe to"
// @Success 201 {object} service.CatalogSubscriptionResponse "Created subscription"
// @Failure 400 {object} ErrorResponse "Invalid request or inactive catalog"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Organization or catalog not found"
// @Failure 409 {object} ErrorResponse "Already subscribed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/subscriptions [post]
func (h *SubscriptionHandler) SubscribeToCatalog(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}

	var req service.SubscribeToCatalogRequest
	if !bindJSON(c, &req) {
		return
	}

	subscription, err := h.subscriptionService.SubscribeToCatalog(tenantID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

// UpdateCatalogSubscription handles PUT /tenants/:tenantId/subscriptions/:subscriptionId
// @Summary Activate or deactivate a catalog subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Param subscriptionId path string true "Subscription ID (UUID)"
// @Param subscription body service.UpdateCatalogSubscriptionRequest true "New state"
// @Success 200 {object} service.CatalogSubscriptionResponse "Updated subscription"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Subscription belongs to another organization"
// @Failure 404 {object} ErrorResponse "Subscription not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/subscriptions/{subscriptionId} [put]
func (h *SubscriptionHandler) UpdateCatalogSubscription(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}
	subscriptionID, ok := parseUUIDParam(c, "subscriptionId", "subscription")
	if !ok {
		return
	}

	var req service.UpdateCatalogSubscriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	subscription, err := h.subscriptionService.UpdateCatalogSubscription(tenantID, subscriptionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// UnsubscribeFromCatalog handles DELETE /tenants/:tenantId/subscriptions/:subscriptionId
// @Summary Unsubscribe from a catalog
// @Tags subscriptions
// @Param tenantId path string true "Organization ID (UUID)"
// @Param subscriptionId path string true "Subscription ID (UUID)"
// @Success 204 "Unsubscribed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Subscription belongs to another organization"
// @Failure 404 {object} ErrorResponse "Subscription not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/subscriptions/{subscriptionId} [delete]
func (h *SubscriptionHandler) UnsubscribeFromCatalog(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}
	subscriptionID, ok := parseUUIDParam(c, "subscriptionId", "subscription")
	if !ok {
		return
	}

	if err := h.subscriptionService.UnsubscribeFromCatalog(tenantID, subscriptionID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListEventSubscriptions handles GET /tenants/:tenantId/event-subscriptions
// @Summary List individual event subscriptions
// @Tags subscriptions
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Success 200 {array} service.EventSubscriptionResponse "Event subscriptions"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/event-subscriptions [get]
func (h *SubscriptionHandler) ListEventSubscriptions(c *gin.Context) {
	tenantID, ok := parseUUIDParam(c, "tenantId", "organization")
	if !ok {
		return
	}

	subscriptions, err := h.subscriptionService.ListEventSubscriptions(tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// GetEventSubscriptionStatus handles GET /tenants/:tenantId/catalogs/:catalogId/events/:eventId/subscription-status
// @Summary Get the subscription status of a catalog event
// @Tags subscriptions
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Param catalogId path string true "Catalog ID (UUID)"
// @Param eventId path string true "Catalog event ID (UUID)"
// @Success 200 {object} service.EventSubscriptionStatusResponse "Subscription status"
// @Failure 400 {object} ErrorResponse "Invalid ID or event outside catalog"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/catalogs/{catalogId}/events/{eventId}/subscription-status [get]
func (h *SubscriptionHandler) GetEventSubscriptionStatus(c *gin.Context) {
	tenantID, catalogID, eventID, ok := eventPathParams(c)
	if !ok {
		return
	}

	status, err := h.subscriptionService.GetEventSubscriptionStatus(tenantID, catalogID, eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// SubscribeToEvent handles POST /tenants/:tenantId/catalogs/:catalogId/events/:eventId/subscribe
// @Summary Subscribe to a single catalog event
// @Tags subscriptions
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Param catalogId path string true "Catalog ID (UUID)"
// @Param eventId path string true "Catalog event ID (UUID)"
// @Success 201 {object} service.EventSubscriptionResponse "Created subscription"
// @Failure 400 {object} ErrorResponse "Invalid ID or event outside catalog"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Organization or event not found"
// @Failure 409 {object} ErrorResponse "Already subscribed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/catalogs/{catalogId}/events/{eventId}/subscribe [post]
func (h *SubscriptionHandler) SubscribeToEvent(c *gin.Context) {
	tenantID, catalogID, eventID, ok := eventPathParams(c)
	if !ok {
		return
	}

	subscription, err := h.subscriptionService.SubscribeToEvent(tenantID, catalogID, eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

// SetEventVisibility handles PUT /tenants/:tenantId/catalogs/:catalogId/events/:eventId/visibility
// @Summary Show or hide a catalog event
// @Description Hiding an event removes it from the calendar even when its catalog is subscribed
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param tenantId path string true "Organization ID (UUID)"
// @Param catalogId path string true "Catalog ID (UUID)"
// @Param eventId path string true "Catalog event ID (UUID)"
// @Param visibility body service.SetEventVisibilityRequest true "Visibility"
// @Success 200 {object} service.EventSubscriptionResponse "Updated subscription"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Organization or event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/catalogs/{catalogId}/events/{eventId}/visibility [put]
func (h *SubscriptionHandler) SetEventVisibility(c *gin.Context) {
	tenantID, catalogID, eventID, ok := eventPathParams(c)
	if !ok {
		return
	}

	var req service.SetEventVisibilityRequest
	if !bindJSON(c, &req) {
		return
	}

	subscription, err := h.subscriptionService.SetEventVisibility(tenantID, catalogID, eventID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// UnsubscribeFromEvent handles DELETE /tenants/:tenantId/catalogs/:catalogId/events/:eventId/unsubscribe
// @Summary Unsubscribe from a single catalog event
// @Tags subscriptions
// @Param tenantId path string true "Organization ID (UUID)"
// @Param catalogId path string true "Catalog ID (UUID)"
// @Param eventId path string true "Catalog event ID (UUID)"
// @Success 204 "Unsubscribed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Subscription not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{tenantId}/catalogs/{catalogId}/events/{eventId}/unsubscribe [delete]
func (h *SubscriptionHandler) UnsubscribeFromEvent(c *gin.Context) {
	tenantID, catalogID, eventID, ok := eventPathParams(c)
	if !ok {
		return
	}

	if err := h.subscriptionService.UnsubscribeFromEvent(tenantID, catalogID, eventID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func eventPathParams(c *gin.Context) (tenantID, catalogID, eventID uuid.UUID, ok bool) {
	if tenantID, ok = parseUUIDParam(c, "tenantId", "organization"); !ok {
		return
	}
	if catalogID, ok = parseUUIDParam(c, "catalogId", "catalog"); !ok {
		return
	}
	eventID, ok = parseUUIDParam(c, "eventId", "event")
	return
}
