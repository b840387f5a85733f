package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tenant-calendar-backend/internal/calendar"
	"tenant-calendar-backend/internal/database/models"
	apperrors "tenant-calendar-backend/internal/errors"
	"tenant-calendar-backend/internal/mocks"
	"tenant-calendar-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// CalendarServiceTestSuite exercises aggregation against the in-memory store
type CalendarServiceTestSuite struct {
	suite.Suite
	store    *fakeCalendarStore
	service  *service.CalendarService
	tenantID uuid.UUID
	now      time.Time
	national *models.Catalog
	world    *models.Catalog
	regional *models.Catalog
}

// SetupTest sets up the test suite
func (suite *CalendarServiceTestSuite) SetupTest() {
	suite.store = newFakeCalendarStore()
	suite.now = at("2025-03-01T00:00:00Z")
	suite.service = service.NewCalendarService(suite.store, 30*24*time.Hour).
		WithClock(func() time.Time { return suite.now })
	suite.tenantID = uuid.New()
	suite.national = suite.store.addCatalog("National holidays", models.CatalogTypeNationalHolidays)
	suite.world = suite.store.addCatalog("World days", models.CatalogTypeWorldSpecialDays)
	suite.regional = suite.store.addCatalog("Regional holidays", models.CatalogTypeRegionalHolidays)
}

func (suite *CalendarServiceTestSuite) unified(spec calendar.FilterSpec) *calendar.Result {
	result, err := suite.service.GetUnifiedCalendar(context.Background(), &suite.tenantID, spec)
	require.NoError(suite.T(), err)
	return result
}

func eventIDs(result *calendar.Result) []uuid.UUID {
	ids := make([]uuid.UUID, len(result.Events))
	for i, e := range result.Events {
		ids[i] = e.ID
	}
	return ids
}

// TestNoOrganization tests that a caller without a tenant is refused
func (suite *CalendarServiceTestSuite) TestNoOrganization() {
	_, err := suite.service.GetUnifiedCalendar(context.Background(), nil, calendar.FilterSpec{})
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoOrganization)
	assert.True(suite.T(), apperrors.IsAuthorization(err))

	_, err = suite.service.GetCalendarStats(context.Background(), nil)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoOrganization)

	_, err = suite.service.GetEventsByMonth(context.Background(), nil, 2025, 1, calendar.FilterSpec{})
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoOrganization)
}

// TestUnionVisibility tests that an event is visible through exactly one mechanism
func (suite *CalendarServiceTestSuite) TestUnionVisibility() {
	viaCatalog := suite.store.addCatalogEvent(suite.national, "New Year", at("2025-01-01T00:00:00Z"))
	viaEvent := suite.store.addCatalogEvent(suite.world, "Earth Day", at("2025-04-22T00:00:00Z"))
	unrelated := suite.store.addCatalogEvent(suite.world, "Ocean Day", at("2025-06-08T00:00:00Z"))

	catalogSub := suite.store.subscribeCatalog(suite.tenantID, suite.national, true)
	eventSub := suite.store.subscribeEvent(suite.tenantID, viaEvent, true)

	result := suite.unified(calendar.FilterSpec{})
	ids := eventIDs(result)
	assert.Contains(suite.T(), ids, viaCatalog.ID)
	assert.Contains(suite.T(), ids, viaEvent.ID)
	assert.NotContains(suite.T(), ids, unrelated.ID)
	assert.Equal(suite.T(), calendar.SubscriptionTypeCatalog, result.Events[0].SourceDetails.SubscriptionType)
	assert.Equal(suite.T(), calendar.SubscriptionTypeIndividual, result.Events[1].SourceDetails.SubscriptionType)
	assert.Equal(suite.T(), "National holidays", result.Events[0].SourceDetails.CatalogName)

	suite.store.unsubscribeEvent(eventSub.ID)
	assert.NotContains(suite.T(), eventIDs(suite.unified(calendar.FilterSpec{})), viaEvent.ID)

	suite.store.unsubscribeCatalog(catalogSub.ID)
	assert.Empty(suite.T(), suite.unified(calendar.FilterSpec{}).Events)
}

// TestInactiveCatalogSubscription tests that inactive subscriptions grant nothing
func (suite *CalendarServiceTestSuite) TestInactiveCatalogSubscription() {
	suite.store.addCatalogEvent(suite.national, "New Year", at("2025-01-01T00:00:00Z"))
	suite.store.subscribeCatalog(suite.tenantID, suite.national, false)

	result := suite.unified(calendar.FilterSpec{})
	assert.Empty(suite.T(), result.Events)
	assert.Equal(suite.T(), 0, result.Summary.SubscribedCatalogs)
}

// TestEmptySubscriptionClosure tests that a tenant without subscriptions sees no catalog events
func (suite *CalendarServiceTestSuite) TestEmptySubscriptionClosure() {
	suite.store.addCatalogEvent(suite.national, "New Year", at("2025-01-01T00:00:00Z"), "holiday")
	suite.store.addOrgEvent(suite.tenantID, "Offsite", at("2025-01-10T00:00:00Z"), "holiday")

	specs := []calendar.FilterSpec{
		{},
		{Tags: []string{"holiday"}},
		{Search: "new"},
		{Source: calendar.SourceCatalog},
		{Type: models.CatalogTypeNationalHolidays},
	}
	for _, spec := range specs {
		result := suite.unified(spec)
		assert.Equal(suite.T(), 0, result.Summary.CatalogEvents)
	}
	assert.Equal(suite.T(), 0, suite.store.catalogEventCalls, "the catalog store should never be queried")

	stats, err := suite.service.GetCalendarStats(context.Background(), &suite.tenantID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), stats.CatalogEvents)
	assert.Equal(suite.T(), int64(1), stats.OrganizationEvents)
}

// TestSoftHideOverride tests that a hidden event disappears from listing and stats
func (suite *CalendarServiceTestSuite) TestSoftHideOverride() {
	a := suite.store.addCatalogEvent(suite.national, "A", at("2025-01-01T00:00:00Z"))
	b := suite.store.addCatalogEvent(suite.national, "B", at("2025-01-02T00:00:00Z"))
	suite.store.subscribeCatalog(suite.tenantID, suite.national, true)

	before, err := suite.service.GetCalendarStats(context.Background(), &suite.tenantID)
	require.NoError(suite.T(), err)

	suite.store.subscribeEvent(suite.tenantID, a, false)

	ids := eventIDs(suite.unified(calendar.FilterSpec{}))
	assert.Equal(suite.T(), []uuid.UUID{b.ID}, ids)

	after, err := suite.service.GetCalendarStats(context.Background(), &suite.tenantID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), before.TotalEvents-1, after.TotalEvents)
	assert.Equal(suite.T(), before.CatalogEvents-1, after.CatalogEvents)
}

// TestHiddenSubscriptionDoesNotGrant tests that a hidden event outside any subscribed catalog stays invisible
func (suite *CalendarServiceTestSuite) TestHiddenSubscriptionDoesNotGrant() {
	e := suite.store.addCatalogEvent(suite.world, "Earth Day", at("2025-04-22T00:00:00Z"))
	suite.store.subscribeEvent(suite.tenantID, e, false)

	assert.Empty(suite.T(), suite.unified(calendar.FilterSpec{}).Events)
}

// TestTypeFilterNonFallback tests that a type without subscriptions yields nothing
func (suite *CalendarServiceTestSuite) TestTypeFilterNonFallback() {
	suite.store.addCatalogEvent(suite.national, "New Year", at("2025-01-01T00:00:00Z"))
	suite.store.addCatalogEvent(suite.regional, "Carnival", at("2025-03-03T00:00:00Z"))
	suite.store.subscribeCatalog(suite.tenantID, suite.national, true)
	suite.store.resetCalls()

	result := suite.unified(calendar.FilterSpec{Type: models.CatalogTypeRegionalHolidays})
	assert.Empty(suite.T(), result.Events)
	assert.Equal(suite.T(), 0, suite.store.catalogEventCalls)
	assert.Equal(suite.T(), models.CatalogTypeRegionalHolidays, *result.Filters.Type)
}

// TestTypeFilterKeepsIndividualEvents tests that the type filter applies to individually subscribed events
func (suite *CalendarServiceTestSuite) TestTypeFilterKeepsIndividualEvents() {
	suite.store.addCatalogEvent(suite.national, "New Year", at("2025-01-01T00:00:00Z"))
	carnival := suite.store.addCatalogEvent(suite.regional, "Carnival", at("2025-03-03T00:00:00Z"))
	suite.store.subscribeCatalog(suite.tenantID, suite.national, true)
	suite.store.subscribeEvent(suite.tenantID, carnival, true)

	result := suite.unified(calendar.FilterSpec{Type: models.CatalogTypeRegionalHolidays})
	assert.Equal(suite.T(), []uuid.UUID{carnival.ID}, eventIDs(result))
}

// TestSourceFilterSkipsQueries tests that an excluded source is never fetched
func (suite *CalendarServiceTestSuite) TestSourceFilterSkipsQueries() {
	suite.store.addCatalogEvent(suite.national, "New Year", at("2025-01-01T00:00:00Z"))
	suite.store.addOrgEvent(suite.tenantID, "Offsite", at("2025-01-10T00:00:00Z"))
	suite.store.subscribeCatalog(suite.tenantID, suite.national, true)

	suite.store.resetCalls()
	result := suite.unified(calendar.FilterSpec{Source: calendar.SourceOrganization})
	assert.Equal(suite.T(), 0, suite.store.catalogEventCalls)
	assert.Equal(suite.T(), 1, suite.store.orgEventCalls)
	assert.Equal(suite.T(), 1, result.Summary.OrganizationEvents)
	assert.Equal(suite.T(), 0, result.Summary.CatalogEvents)

	suite.store.resetCalls()
	result = suite.unified(calendar.FilterSpec{Source: calendar.SourceCatalog})
	assert.Equal(suite.T(), 1, suite.store.catalogEventCalls)
	assert.Equal(suite.T(), 0, suite.store.orgEventCalls)
	assert.Equal(suite.T(), 1, result.Summary.CatalogEvents)
}

// TestOrganizationEventsAreTenantScoped tests that other tenants' events never leak
func (suite *CalendarServiceTestSuite) TestOrganizationEventsAreTenantScoped() {
	mine := suite.store.addOrgEvent(suite.tenantID, "Offsite", at("2025-01-10T00:00:00Z"))
	suite.store.addOrgEvent(uuid.New(), "Other offsite", at("2025-01-10T00:00:00Z"))

	result := suite.unified(calendar.FilterSpec{})
	assert.Equal(suite.T(), []uuid.UUID{mine.ID}, eventIDs(result))
	assert.Equal(suite.T(), calendar.EventSourceOrganization, result.Events[0].Source)
}

// TestFiltersApplyToBothSources tests that tags and search narrow both collections
func (suite *CalendarServiceTestSuite) TestFiltersApplyToBothSources() {
	suite.store.subscribeCatalog(suite.tenantID, suite.national, true)
	holiday := suite.store.addCatalogEvent(suite.national, "New Year", at("2025-01-01T00:00:00Z"), "holiday")
	suite.store.addCatalogEvent(suite.national, "Labour Day", at("2025-05-01T00:00:00Z"), "work")
	party := suite.store.addOrgEvent(suite.tenantID, "Holiday party", at("2025-12-20T00:00:00Z"), "holiday")
	suite.store.addOrgEvent(suite.tenantID, "Planning", at("2025-01-15T00:00:00Z"), "work")

	result := suite.unified(calendar.FilterSpec{Tags: []string{"holiday"}})
	assert.Equal(suite.T(), []uuid.UUID{holiday.ID, party.ID}, eventIDs(result))

	result = suite.unified(calendar.FilterSpec{Search: "PARTY"})
	assert.Equal(suite.T(), []uuid.UUID{party.ID}, eventIDs(result))

	from := at("2025-04-01T00:00:00Z")
	result = suite.unified(calendar.FilterSpec{StartDate: &from})
	assert.Len(suite.T(), result.Events, 2)
}

// TestMonthBoundaryExactness tests that month windows split exactly at midnight UTC
func (suite *CalendarServiceTestSuite) TestMonthBoundaryExactness() {
	suite.store.subscribeCatalog(suite.tenantID, suite.national, true)
	january := suite.store.addCatalogEvent(suite.national, "Late January", at("2025-01-31T23:00:00Z"))
	february := suite.store.addCatalogEvent(suite.national, "Early February", at("2025-02-01T00:00:01Z"))

	jan, err := suite.service.GetEventsByMonth(context.Background(), &suite.tenantID, 2025, 1, calendar.FilterSpec{})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uuid.UUID{january.ID}, eventIDs(jan))
	assert.Equal(suite.T(), 1, jan.Summary.Total)

	feb, err := suite.service.GetEventsByMonth(context.Background(), &suite.tenantID, 2025, 2, calendar.FilterSpec{})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uuid.UUID{february.ID}, eventIDs(feb))
	assert.Equal(suite.T(), 1, feb.Summary.SubscribedCatalogs)
}

// TestMonthOverridesCallerDates tests that the month window replaces caller-supplied dates
func (suite *CalendarServiceTestSuite) TestMonthOverridesCallerDates() {
	suite.store.subscribeCatalog(suite.tenantID, suite.national, true)
	e := suite.store.addCatalogEvent(suite.national, "Late January", at("2025-01-31T23:00:00Z"))

	from := at("2030-01-01T00:00:00Z")
	result, err := suite.service.GetEventsByMonth(context.Background(), &suite.tenantID, 2025, 1, calendar.FilterSpec{StartDate: &from})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uuid.UUID{e.ID}, eventIDs(result))
	assert.Equal(suite.T(), "2025-01-01T00:00:00Z", result.Filters.StartDate.Format(time.RFC3339))
}

// TestInvalidMonth tests that out of range months are rejected
func (suite *CalendarServiceTestSuite) TestInvalidMonth() {
	_, err := suite.service.GetEventsByMonth(context.Background(), &suite.tenantID, 2025, 13, calendar.FilterSpec{})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidMonth)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestStableMergeOrdering tests that catalog events precede organization events on ties
func (suite *CalendarServiceTestSuite) TestStableMergeOrdering() {
	start := at("2025-02-14T09:00:00Z")
	suite.store.subscribeCatalog(suite.tenantID, suite.world, true)
	orgEvent := suite.store.addOrgEvent(suite.tenantID, "Team breakfast", start)
	catalogEvent := suite.store.addCatalogEvent(suite.world, "Valentine's Day", start)

	for i := 0; i < 5; i++ {
		result := suite.unified(calendar.FilterSpec{})
		assert.Equal(suite.T(), []uuid.UUID{catalogEvent.ID, orgEvent.ID}, eventIDs(result))
	}
}

// TestStatsListingAgreement tests that stats count the same catalog events the listing returns
func (suite *CalendarServiceTestSuite) TestStatsListingAgreement() {
	shared := suite.store.addCatalogEvent(suite.national, "New Year", at("2025-01-01T00:00:00Z"))
	suite.store.addCatalogEvent(suite.national, "Labour Day", at("2025-05-01T00:00:00Z"))
	hidden := suite.store.addCatalogEvent(suite.national, "Hidden", at("2025-06-01T00:00:00Z"))
	individual := suite.store.addCatalogEvent(suite.world, "Earth Day", at("2025-04-22T00:00:00Z"))
	suite.store.addCatalogEvent(suite.world, "Ocean Day", at("2025-06-08T00:00:00Z"))
	suite.store.addOrgEvent(suite.tenantID, "Offsite", at("2025-03-10T00:00:00Z"))

	suite.store.subscribeCatalog(suite.tenantID, suite.national, true)
	suite.store.subscribeEvent(suite.tenantID, shared, true)
	suite.store.subscribeEvent(suite.tenantID, hidden, false)
	suite.store.subscribeEvent(suite.tenantID, individual, true)

	result := suite.unified(calendar.FilterSpec{})
	stats, err := suite.service.GetCalendarStats(context.Background(), &suite.tenantID)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), int64(result.Summary.CatalogEvents), stats.CatalogEvents)
	assert.Equal(suite.T(), int64(3), stats.CatalogEvents, "shared event must not be counted twice")
	assert.Equal(suite.T(), int64(1), stats.OrganizationEvents)
	assert.Equal(suite.T(), int64(4), stats.TotalEvents)
	assert.Equal(suite.T(), 1, stats.ActiveSubscriptions)
	assert.Equal(suite.T(), 2, stats.IndividualEventSubscriptions)
	assert.Equal(suite.T(), calendar.TypeBreakdown{Count: 1, Events: 3}, stats.SubscriptionsByType[models.CatalogTypeNationalHolidays])
	assert.NotContains(suite.T(), stats.SubscriptionsByType, models.CatalogTypeWorldSpecialDays)
}

// TestUpcomingWindow tests the half-open upcoming window
func (suite *CalendarServiceTestSuite) TestUpcomingWindow() {
	suite.store.subscribeCatalog(suite.tenantID, suite.national, true)
	suite.store.addCatalogEvent(suite.national, "Now", suite.now)
	suite.store.addCatalogEvent(suite.national, "Soon", suite.now.Add(10*24*time.Hour))
	suite.store.addCatalogEvent(suite.national, "Edge", suite.now.Add(30*24*time.Hour))
	suite.store.addCatalogEvent(suite.national, "Past", suite.now.Add(-time.Hour))
	suite.store.addOrgEvent(suite.tenantID, "Review", suite.now.Add(24*time.Hour))

	stats, err := suite.service.GetCalendarStats(context.Background(), &suite.tenantID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), stats.Upcoming.CatalogEvents)
	assert.Equal(suite.T(), int64(1), stats.Upcoming.OrganizationEvents)
	assert.Equal(suite.T(), int64(3), stats.Upcoming.Total)
	assert.Equal(suite.T(), suite.now, stats.Upcoming.From)
	assert.Equal(suite.T(), suite.now.Add(30*24*time.Hour), stats.Upcoming.Until)
}

// TestIdempotentResolution tests that resolving twice yields identical sets
func (suite *CalendarServiceTestSuite) TestIdempotentResolution() {
	e := suite.store.addCatalogEvent(suite.world, "Earth Day", at("2025-04-22T00:00:00Z"))
	h := suite.store.addCatalogEvent(suite.national, "Hidden", at("2025-06-01T00:00:00Z"))
	suite.store.subscribeCatalog(suite.tenantID, suite.national, true)
	suite.store.subscribeEvent(suite.tenantID, e, true)
	suite.store.subscribeEvent(suite.tenantID, h, false)

	resolver := service.NewSubscriptionResolver(suite.store)
	first, err := resolver.Resolve(context.Background(), suite.tenantID)
	require.NoError(suite.T(), err)
	second, err := resolver.Resolve(context.Background(), suite.tenantID)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), first.SubscribedCatalogIDs(), second.SubscribedCatalogIDs())
	assert.Equal(suite.T(), first.SubscribedEventIDs(), second.SubscribedEventIDs())
	assert.Equal(suite.T(), first.HiddenEventIDs(), second.HiddenEventIDs())
	assert.Equal(suite.T(), []uuid.UUID{h.ID}, first.HiddenEventIDs())
}

// TestExportICal tests that the export contains the visible events
func (suite *CalendarServiceTestSuite) TestExportICal() {
	suite.store.subscribeCatalog(suite.tenantID, suite.national, true)
	suite.store.addCatalogEvent(suite.national, "New Year", at("2025-01-01T00:00:00Z"))
	suite.store.addOrgEvent(suite.tenantID, "Offsite", at("2025-01-10T00:00:00Z"))

	ics, err := suite.service.ExportICal(context.Background(), &suite.tenantID, calendar.FilterSpec{})
	require.NoError(suite.T(), err)
	assert.True(suite.T(), strings.HasPrefix(ics, "BEGIN:VCALENDAR"))
	assert.Contains(suite.T(), ics, "SUMMARY:New Year")
	assert.Contains(suite.T(), ics, "SUMMARY:Offsite")
}

// TestCalendarServiceTestSuite runs the test suite
func TestCalendarServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarServiceTestSuite))
}

// CalendarServiceStoreErrorTestSuite checks that store failures become aggregation errors
type CalendarServiceStoreErrorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockCalendarRepositoryInterface
	service  *service.CalendarService
	tenantID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CalendarServiceStoreErrorTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCalendarRepositoryInterface(suite.ctrl)
	suite.service = service.NewCalendarService(suite.mockRepo, 0)
	suite.tenantID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *CalendarServiceStoreErrorTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestResolveFailure tests that a failed subscription read fails the call
func (suite *CalendarServiceStoreErrorTestSuite) TestResolveFailure() {
	dbErr := errors.New("connection refused")
	suite.mockRepo.EXPECT().ListActiveCatalogSubscriptions(gomock.Any(), suite.tenantID).Return(nil, dbErr).AnyTimes()
	suite.mockRepo.EXPECT().ListEventSubscriptions(gomock.Any(), suite.tenantID).Return(nil, nil).AnyTimes()

	result, err := suite.service.GetUnifiedCalendar(context.Background(), &suite.tenantID, calendar.FilterSpec{})
	assert.Nil(suite.T(), result)
	assert.True(suite.T(), apperrors.IsAggregation(err))
	assert.ErrorIs(suite.T(), err, dbErr)
	assert.False(suite.T(), apperrors.IsAuthorization(err))
}

// TestFetchFailure tests that one failed fetch fails the whole call
func (suite *CalendarServiceStoreErrorTestSuite) TestFetchFailure() {
	dbErr := errors.New("timeout")
	suite.mockRepo.EXPECT().ListActiveCatalogSubscriptions(gomock.Any(), suite.tenantID).Return(nil, nil)
	suite.mockRepo.EXPECT().ListEventSubscriptions(gomock.Any(), suite.tenantID).Return(nil, nil)
	suite.mockRepo.EXPECT().FindOrganizationEvents(gomock.Any(), gomock.Any()).Return(nil, dbErr)

	result, err := suite.service.GetUnifiedCalendar(context.Background(), &suite.tenantID, calendar.FilterSpec{})
	assert.Nil(suite.T(), result)
	assert.True(suite.T(), apperrors.IsAggregation(err))
	assert.ErrorIs(suite.T(), err, dbErr)
}

// TestStatsFailure tests that a failed count fails the statistics
func (suite *CalendarServiceStoreErrorTestSuite) TestStatsFailure() {
	dbErr := errors.New("timeout")
	suite.mockRepo.EXPECT().ListActiveCatalogSubscriptions(gomock.Any(), suite.tenantID).Return(nil, nil)
	suite.mockRepo.EXPECT().ListEventSubscriptions(gomock.Any(), suite.tenantID).Return(nil, nil)
	suite.mockRepo.EXPECT().CountCatalogEvents(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	suite.mockRepo.EXPECT().CountOrganizationEvents(gomock.Any(), gomock.Any()).Return(int64(0), dbErr).AnyTimes()
	suite.mockRepo.EXPECT().CountEventsByCatalog(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]int64{}, nil).AnyTimes()

	stats, err := suite.service.GetCalendarStats(context.Background(), &suite.tenantID)
	assert.Nil(suite.T(), stats)
	assert.True(suite.T(), apperrors.IsAggregation(err))
}

// TestCalendarServiceStoreErrorTestSuite runs the test suite
func TestCalendarServiceStoreErrorTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarServiceStoreErrorTestSuite))
}
