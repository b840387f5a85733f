package handlers

import (
	"net/http"

	"tenant-calendar-backend/internal/auth"
	"tenant-calendar-backend/internal/calendar"
	apperrors "tenant-calendar-backend/internal/errors"
	"tenant-calendar-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalendarHandler serves the unified calendar of the caller's organization
type CalendarHandler struct {
	calendarService service.CalendarServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService service.CalendarServiceInterface) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// GetUnifiedCalendar handles GET /calendar
// @Summary Get the unified calendar
// @Description Merge the catalog events the organization is subscribed to with its own events
// @Tags calendar
// @Produce json
// @Param startDate query string false "Lower bound on event start (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Upper bound on event start (RFC 3339 or YYYY-MM-DD)"
// @Param tags query string false "Comma separated tags, any of which must match"
// @Param search query string false "Case-insensitive text matched against title or description"
// @Param source query string false "all, catalog or organization"
// @Param country query string false "Country of catalog events, all for no constraint"
// @Param region query string false "Region of catalog events, all for no constraint"
// @Param type query string false "Catalog type (WORLD_SPECIAL_DAYS, NATIONAL_HOLIDAYS, REGIONAL_HOLIDAYS)"
// @Success 200 {object} calendar.Result "Unified calendar"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 403 {object} ErrorResponse "Caller has no organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /calendar [get]
func (h *CalendarHandler) GetUnifiedCalendar(c *gin.Context) {
	spec, ok := bindFilter(c)
	if !ok {
		return
	}

	result, err := h.calendarService.GetUnifiedCalendar(c.Request.Context(), callerTenant(c), spec)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetEventsByMonth handles GET /calendar/month/:year/:month
// @Summary Get one month of the unified calendar
// @Description Same as the unified calendar, with the date range replaced by the given UTC month
// @Tags calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param tags query string false "Comma separated tags"
// @Param search query string false "Text search"
// @Param source query string false "all, catalog or organization"
// @Param country query string false "Country of catalog events"
// @Param region query string false "Region of catalog events"
// @Param type query string false "Catalog type"
// @Success 200 {object} calendar.Result "Events of the month"
// @Failure 400 {object} ErrorResponse "Invalid year, month or filter"
// @Failure 403 {object} ErrorResponse "Caller has no organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /calendar/month/{year}/{month} [get]
func (h *CalendarHandler) GetEventsByMonth(c *gin.Context) {
	tenantID := callerTenant(c)
	if tenantID == nil {
		respondError(c, apperrors.ErrNoOrganization)
		return
	}

	year, month, err := calendar.ParseMonth(c.Param("year"), c.Param("month"))
	if err != nil {
		respondError(c, err)
		return
	}

	// the month replaces any caller-supplied date range
	spec, ok := bindFilter(c, calendar.FilterQuery.WithoutDates)
	if !ok {
		return
	}

	result, err := h.calendarService.GetEventsByMonth(c.Request.Context(), tenantID, year, month, spec)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCalendarStats handles GET /calendar/stats
// @Summary Get calendar statistics
// @Description Count visible events, subscriptions and upcoming events of the organization
// @Tags calendar
// @Produce json
// @Success 200 {object} calendar.Stats "Calendar statistics"
// @Failure 403 {object} ErrorResponse "Caller has no organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /calendar/stats [get]
func (h *CalendarHandler) GetCalendarStats(c *gin.Context) {
	stats, err := h.calendarService.GetCalendarStats(c.Request.Context(), callerTenant(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportICal handles GET /calendar/export.ics
// @Summary Export the unified calendar
// @Description Render the filtered unified calendar as an iCalendar document
// @Tags calendar
// @Produce text/calendar
// @Param startDate query string false "Lower bound on event start"
// @Param endDate query string false "Upper bound on event start"
// @Param tags query string false "Comma separated tags"
// @Param search query string false "Text search"
// @Param source query string false "all, catalog or organization"
// @Param type query string false "Catalog type"
// @Success 200 {string} string "iCalendar document"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 403 {object} ErrorResponse "Caller has no organization"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /calendar/export.ics [get]
func (h *CalendarHandler) ExportICal(c *gin.Context) {
	spec, ok := bindFilter(c)
	if !ok {
		return
	}

	body, err := h.calendarService.ExportICal(c.Request.Context(), callerTenant(c), spec)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

func bindFilter(c *gin.Context, adjust ...func(calendar.FilterQuery) calendar.FilterQuery) (calendar.FilterSpec, bool) {
	var query calendar.FilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Details: err.Error()})
		return calendar.FilterSpec{}, false
	}
	for _, fn := range adjust {
		query = fn(query)
	}

	spec, err := query.Spec()
	if err != nil {
		respondError(c, err)
		return calendar.FilterSpec{}, false
	}
	return spec, true
}

// callerTenant returns the organization of the authenticated caller, nil when
// the caller has none.
func callerTenant(c *gin.Context) *uuid.UUID {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		return nil
	}
	return identity.TenantID
}
