package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"tenant-calendar-backend/internal/auth"
	"tenant-calendar-backend/internal/calendar"
	"tenant-calendar-backend/internal/database/models"
	apperrors "tenant-calendar-backend/internal/errors"
	"tenant-calendar-backend/internal/mocks"
	"tenant-calendar-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CalendarHandlerTestSuite defines the test suite for CalendarHandler
type CalendarHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockCalendarService *mocks.MockCalendarServiceInterface
	handler             *CalendarHandler
	httpSuite           *testutils.HTTPTestSuite
	tenantID            uuid.UUID
	identity            *auth.Identity
}

// SetupTest sets up the test suite
func (suite *CalendarHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCalendarService = mocks.NewMockCalendarServiceInterface(suite.ctrl)
	suite.handler = NewCalendarHandler(suite.mockCalendarService)
	suite.tenantID = uuid.New()
	suite.identity = memberOf(suite.tenantID, models.RoleUser)

	suite.httpSuite = testutils.SetupHTTPTest()
	v1 := suite.httpSuite.AuthenticatedGroup("/api/v1", suite.identity)
	cal := v1.Group("/calendar")
	{
		cal.GET("", suite.handler.GetUnifiedCalendar)
		cal.GET("/stats", suite.handler.GetCalendarStats)
		cal.GET("/month/:year/:month", suite.handler.GetEventsByMonth)
		cal.GET("/export.ics", suite.handler.ExportICal)
	}
}

// TearDownTest cleans up after each test
func (suite *CalendarHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CalendarHandlerTestSuite) result() *calendar.Result {
	event := calendar.UnifiedEvent{
		ID:        uuid.New(),
		Title:     "Labour Day",
		StartDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 5, 1, 23, 59, 59, 0, time.UTC),
		Source:    calendar.EventSourceCatalog,
	}
	r := calendar.NewResult([]calendar.UnifiedEvent{event}, calendar.Resolution{}, calendar.FilterSpec{})
	return &r
}

// TestGetUnifiedCalendar tests that query filters reach the service
func (suite *CalendarHandlerTestSuite) TestGetUnifiedCalendar() {
	suite.mockCalendarService.EXPECT().
		GetUnifiedCalendar(gomock.Any(), &suite.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *uuid.UUID, spec calendar.FilterSpec) (*calendar.Result, error) {
			require.NotNil(suite.T(), spec.StartDate)
			assert.Equal(suite.T(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *spec.StartDate)
			assert.Equal(suite.T(), []string{"holiday", "public"}, spec.Tags)
			assert.Equal(suite.T(), calendar.SourceCatalog, spec.Source)
			assert.Equal(suite.T(), models.CatalogTypeNationalHolidays, spec.Type)
			assert.Equal(suite.T(), "labour", spec.Search)
			return suite.result(), nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET",
		"/api/v1/calendar?startDate=2025-01-01&tags=holiday,public&source=catalog&type=NATIONAL_HOLIDAYS&search=labour", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response calendar.Result
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	require.Len(suite.T(), response.Events, 1)
	assert.Equal(suite.T(), "Labour Day", response.Events[0].Title)
	assert.Equal(suite.T(), 1, response.Summary.Total)
}

// TestGetUnifiedCalendarInvalidFilter tests that bad filters never reach the service
func (suite *CalendarHandlerTestSuite) TestGetUnifiedCalendarInvalidFilter() {
	for _, query := range []string{"source=everything", "type=BIRTHDAYS", "startDate=yesterday"} {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/calendar?"+query, nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
	}
}

// TestGetUnifiedCalendarNoOrganization tests the 403 for callers without an organization
func (suite *CalendarHandlerTestSuite) TestGetUnifiedCalendarNoOrganization() {
	suite.mockCalendarService.EXPECT().
		GetUnifiedCalendar(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrNoOrganization).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/calendar", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "organization")
}

// TestGetUnifiedCalendarAggregationFailure tests that store failures surface as 500
func (suite *CalendarHandlerTestSuite) TestGetUnifiedCalendarAggregationFailure() {
	suite.mockCalendarService.EXPECT().
		GetUnifiedCalendar(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewAggregationError("fetch catalog events", errors.New("connection refused"))).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/calendar", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Internal server error")
}

// TestGetEventsByMonth tests that the month path parameters reach the service
func (suite *CalendarHandlerTestSuite) TestGetEventsByMonth() {
	suite.mockCalendarService.EXPECT().
		GetEventsByMonth(gomock.Any(), &suite.tenantID, 2025, 5, gomock.Any()).
		Return(suite.result(), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/calendar/month/2025/5", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetEventsByMonthInvalid tests rejected year and month values
func (suite *CalendarHandlerTestSuite) TestGetEventsByMonthInvalid() {
	for _, path := range []string{"/2025/13", "/2025/0", "/abc/5"} {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/calendar/month"+path, nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "month")
	}
}

// TestGetEventsByMonthIgnoresCallerDates tests that the month window replaces startDate and endDate
func (suite *CalendarHandlerTestSuite) TestGetEventsByMonthIgnoresCallerDates() {
	suite.mockCalendarService.EXPECT().
		GetEventsByMonth(gomock.Any(), &suite.tenantID, 2025, 1, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *uuid.UUID, _, _ int, spec calendar.FilterSpec) (*calendar.Result, error) {
			assert.Nil(suite.T(), spec.StartDate)
			assert.Nil(suite.T(), spec.EndDate)
			assert.Equal(suite.T(), []string{"holiday"}, spec.Tags)
			return suite.result(), nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/calendar/month/2025/1?startDate=not-a-date&endDate=2024-01-01&tags=holiday", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetEventsByMonthNoOrganization tests that the organization check precedes month validation
func (suite *CalendarHandlerTestSuite) TestGetEventsByMonthNoOrganization() {
	httpSuite := testutils.SetupHTTPTest()
	orphan := &auth.Identity{UserID: uuid.New(), Role: models.RoleUser}
	httpSuite.AuthenticatedGroup("/api/v1", orphan).GET("/calendar/month/:year/:month", suite.handler.GetEventsByMonth)

	for _, path := range []string{"/2025/13", "/2025/5"} {
		recorder := httpSuite.MakeRequest("GET", "/api/v1/calendar/month"+path, nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "organization")
	}
}

// TestGetCalendarStats tests the statistics endpoint
func (suite *CalendarHandlerTestSuite) TestGetCalendarStats() {
	stats := &calendar.Stats{
		TotalEvents:         12,
		CatalogEvents:       10,
		OrganizationEvents:  2,
		ActiveSubscriptions: 3,
		SubscriptionsByType: map[models.CatalogType]calendar.TypeBreakdown{},
	}
	suite.mockCalendarService.EXPECT().
		GetCalendarStats(gomock.Any(), &suite.tenantID).
		Return(stats, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/calendar/stats", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), float64(12), response["totalEvents"])
	assert.Equal(suite.T(), float64(3), response["activeSubscriptions"])
}

// TestExportICal tests the iCalendar download
func (suite *CalendarHandlerTestSuite) TestExportICal() {
	suite.mockCalendarService.EXPECT().
		ExportICal(gomock.Any(), &suite.tenantID, gomock.Any()).
		Return("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/calendar/export.ics", nil)

	testutils.AssertICalResponse(suite.T(), recorder)
	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), "calendar.ics")
}

// TestCalendarHandlerTestSuite runs the test suite
func TestCalendarHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}
