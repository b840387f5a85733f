//go:build integration

package repository

import (
	"testing"
	"time"

	"tenant-calendar-backend/internal/database/models"
	"tenant-calendar-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SubscriptionRepositoryTestSuite tests both subscription repositories
type SubscriptionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	catalogSubs   *CatalogSubscriptionRepository
	eventSubs     *EventSubscriptionRepository
	factories     *testutils.FactorySet

	tenant  *models.Tenant
	catalog *models.Catalog
	event   *models.CatalogEvent
}

// SetupSuite runs before all tests in the suite
func (suite *SubscriptionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.catalogSubs = NewCatalogSubscriptionRepository(suite.baseTestSuite.DB)
	suite.eventSubs = NewEventSubscriptionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SubscriptionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds one tenant, one catalog and one event
func (suite *SubscriptionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	suite.tenant = suite.factories.Tenant.Create()
	suite.Require().NoError(db.Create(suite.tenant).Error)
	suite.catalog = suite.factories.Catalog.Create()
	suite.Require().NoError(db.Create(suite.catalog).Error)
	suite.event = suite.factories.CatalogEvent.InCatalog(suite.catalog.ID, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(db.Create(suite.event).Error)
}

// TearDownTest runs after each test
func (suite *SubscriptionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCatalogSubscriptionLifecycle tests create, toggle and delete
func (suite *SubscriptionRepositoryTestSuite) TestCatalogSubscriptionLifecycle() {
	sub := &models.CatalogSubscription{TenantID: suite.tenant.ID, CatalogID: suite.catalog.ID, IsActive: true}
	suite.Require().NoError(suite.catalogSubs.Create(sub))
	suite.NotZero(sub.SubscribedAt)

	found, err := suite.catalogSubs.GetByID(sub.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found.Catalog)
	suite.Equal(suite.catalog.Name, found.Catalog.Name)

	suite.Require().NoError(suite.catalogSubs.UpdateActive(sub.ID, false))
	found, err = suite.catalogSubs.GetByTenantAndCatalog(suite.tenant.ID, suite.catalog.ID)
	suite.Require().NoError(err)
	suite.False(found.IsActive)

	suite.Require().NoError(suite.catalogSubs.Delete(sub.ID))
	_, err = suite.catalogSubs.GetByID(sub.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCatalogSubscriptionUnique tests that a tenant subscribes to a catalog once
func (suite *SubscriptionRepositoryTestSuite) TestCatalogSubscriptionUnique() {
	first := &models.CatalogSubscription{TenantID: suite.tenant.ID, CatalogID: suite.catalog.ID, IsActive: true}
	suite.Require().NoError(suite.catalogSubs.Create(first))

	second := &models.CatalogSubscription{TenantID: suite.tenant.ID, CatalogID: suite.catalog.ID, IsActive: true}
	suite.Error(suite.catalogSubs.Create(second))
}

// TestCatalogSubscriptionsNewestFirst tests the listing order
func (suite *SubscriptionRepositoryTestSuite) TestCatalogSubscriptionsNewestFirst() {
	other := suite.factories.Catalog.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(other).Error)

	older := &models.CatalogSubscription{
		TenantID: suite.tenant.ID, CatalogID: suite.catalog.ID, IsActive: true,
		SubscribedAt: time.Now().Add(-time.Hour),
	}
	newer := &models.CatalogSubscription{TenantID: suite.tenant.ID, CatalogID: other.ID, IsActive: true}
	suite.Require().NoError(suite.catalogSubs.Create(older))
	suite.Require().NoError(suite.catalogSubs.Create(newer))

	subs, err := suite.catalogSubs.GetByTenantID(suite.tenant.ID)
	suite.Require().NoError(err)
	suite.Require().Len(subs, 2)
	suite.Equal(newer.ID, subs[0].ID)
	suite.Equal(older.ID, subs[1].ID)
}

// TestEventSubscriptionUpsert tests that a second upsert only changes visibility
func (suite *SubscriptionRepositoryTestSuite) TestEventSubscriptionUpsert() {
	sub := &models.EventSubscription{TenantID: suite.tenant.ID, CatalogEventID: suite.event.ID, IsVisible: true}
	suite.Require().NoError(suite.eventSubs.Upsert(sub))

	hide := &models.EventSubscription{TenantID: suite.tenant.ID, CatalogEventID: suite.event.ID}
	suite.Require().NoError(suite.eventSubs.Upsert(hide))

	found, err := suite.eventSubs.GetByTenantAndEvent(suite.tenant.ID, suite.event.ID)
	suite.Require().NoError(err)
	suite.Equal(sub.ID, found.ID)
	suite.False(found.IsVisible)

	var count int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.EventSubscription{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	subs, err := suite.eventSubs.GetByTenantID(suite.tenant.ID)
	suite.Require().NoError(err)
	suite.Require().Len(subs, 1)
	suite.Require().NotNil(subs[0].CatalogEvent)
	suite.Require().NotNil(subs[0].CatalogEvent.Catalog)
	suite.Equal(suite.catalog.ID, subs[0].CatalogEvent.Catalog.ID)
}

// TestTenantSubscriptionCounts tests that only active and visible subscriptions are counted
func (suite *SubscriptionRepositoryTestSuite) TestTenantSubscriptionCounts() {
	db := suite.baseTestSuite.DB
	paused := suite.factories.Catalog.Create()
	suite.Require().NoError(db.Create(paused).Error)
	hidden := suite.factories.CatalogEvent.InCatalog(suite.catalog.ID, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(db.Create(hidden).Error)

	suite.Require().NoError(suite.catalogSubs.Create(&models.CatalogSubscription{TenantID: suite.tenant.ID, CatalogID: suite.catalog.ID, IsActive: true}))
	pausedSub := &models.CatalogSubscription{TenantID: suite.tenant.ID, CatalogID: paused.ID, IsActive: true}
	suite.Require().NoError(suite.catalogSubs.Create(pausedSub))
	suite.Require().NoError(suite.catalogSubs.UpdateActive(pausedSub.ID, false))

	suite.Require().NoError(suite.eventSubs.Upsert(&models.EventSubscription{TenantID: suite.tenant.ID, CatalogEventID: suite.event.ID, IsVisible: true}))
	suite.Require().NoError(suite.eventSubs.Upsert(&models.EventSubscription{TenantID: suite.tenant.ID, CatalogEventID: hidden.ID, IsVisible: false}))

	active, err := suite.catalogSubs.CountActiveByTenantID(suite.tenant.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), active)

	visible, err := suite.eventSubs.CountVisibleByTenantID(suite.tenant.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), visible)

	all, err := suite.eventSubs.Count()
	suite.Require().NoError(err)
	suite.Equal(int64(2), all)
}

// TestDeletingCatalogCascades tests that subscriptions follow their catalog
func (suite *SubscriptionRepositoryTestSuite) TestDeletingCatalogCascades() {
	suite.Require().NoError(suite.catalogSubs.Create(&models.CatalogSubscription{
		TenantID: suite.tenant.ID, CatalogID: suite.catalog.ID, IsActive: true,
	}))
	suite.Require().NoError(suite.eventSubs.Create(&models.EventSubscription{
		TenantID: suite.tenant.ID, CatalogEventID: suite.event.ID, IsVisible: true,
	}))

	suite.Require().NoError(NewCatalogRepository(suite.baseTestSuite.DB).Delete(suite.catalog.ID))

	var remaining int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.CatalogSubscription{}).Count(&remaining).Error)
	suite.Zero(remaining)
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.EventSubscription{}).Count(&remaining).Error)
	suite.Zero(remaining)
}

// TestSubscriptionRepositoryTestSuite runs the test suite
func TestSubscriptionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionRepositoryTestSuite))
}
