//go:build integration

package repository

import (
	"testing"
	"time"

	"tenant-calendar-backend/internal/database/models"
	"tenant-calendar-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CatalogRepositoryTestSuite tests catalogs, their events, tenants and tenant counts
type CatalogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	catalogs      *CatalogRepository
	events        *CatalogEventRepository
	tenants       *TenantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CatalogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.catalogs = NewCatalogRepository(suite.baseTestSuite.DB)
	suite.events = NewCatalogEventRepository(suite.baseTestSuite.DB)
	suite.tenants = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CatalogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CatalogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CatalogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateInactiveCatalog tests that IsActive=false survives the column default
func (suite *CatalogRepositoryTestSuite) TestCreateInactiveCatalog() {
	catalog := suite.factories.Catalog.Inactive()
	suite.Require().NoError(suite.catalogs.Create(catalog))

	found, err := suite.catalogs.GetByID(catalog.ID)
	suite.Require().NoError(err)
	suite.False(found.IsActive)

	active, err := suite.catalogs.GetAll(true)
	suite.Require().NoError(err)
	suite.Empty(active)

	all, err := suite.catalogs.GetAll(false)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

// TestAvailableForTenant tests that subscribed and inactive catalogs are excluded
func (suite *CatalogRepositoryTestSuite) TestAvailableForTenant() {
	tenant := suite.factories.Tenant.Create()
	suite.Require().NoError(suite.tenants.Create(tenant))

	subscribed := suite.factories.Catalog.Create()
	available := suite.factories.Catalog.Create()
	inactive := suite.factories.Catalog.Inactive()
	for _, c := range []*models.Catalog{subscribed, available, inactive} {
		suite.Require().NoError(suite.catalogs.Create(c))
	}
	suite.Require().NoError(NewCatalogSubscriptionRepository(suite.baseTestSuite.DB).Create(&models.CatalogSubscription{
		TenantID: tenant.ID, CatalogID: subscribed.ID, IsActive: true,
	}))

	catalogs, err := suite.catalogs.GetAvailableForTenant(tenant.ID)
	suite.Require().NoError(err)
	suite.Require().Len(catalogs, 1)
	suite.Equal(available.ID, catalogs[0].ID)
}

// TestCatalogEvents tests paging, counting and cascading deletes of catalog events
func (suite *CatalogRepositoryTestSuite) TestCatalogEvents() {
	catalog := suite.factories.Catalog.Create()
	suite.Require().NoError(suite.catalogs.Create(catalog))

	for i := 0; i < 3; i++ {
		event := suite.factories.CatalogEvent.InCatalog(catalog.ID, time.Date(2025, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC))
		event.Tags = pq.StringArray{"holiday"}
		suite.Require().NoError(suite.events.Create(event))
	}

	page, total, err := suite.events.GetByCatalogID(catalog.ID, 2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page, 2)
	suite.Equal([]string{"holiday"}, []string(page[0].Tags))

	counts, err := suite.events.CountByCatalogIDs([]uuid.UUID{catalog.ID})
	suite.Require().NoError(err)
	suite.Equal(int64(3), counts[catalog.ID])

	suite.Require().NoError(suite.catalogs.Delete(catalog.ID))
	_, total, err = suite.events.GetByCatalogID(catalog.ID, 10, 0)
	suite.Require().NoError(err)
	suite.Zero(total)
}

// TestTenantSlugIsUnique tests tenant slug lookup and uniqueness
func (suite *CatalogRepositoryTestSuite) TestTenantSlugIsUnique() {
	tenant := suite.factories.Tenant.WithSlug("acme")
	suite.Require().NoError(suite.tenants.Create(tenant))

	found, err := suite.tenants.GetBySlug("acme")
	suite.Require().NoError(err)
	suite.Equal(tenant.ID, found.ID)

	suite.Error(suite.tenants.Create(suite.factories.Tenant.WithSlug("acme")))

	suite.Require().NoError(suite.tenants.Delete(tenant.ID))
	_, err = suite.tenants.GetByID(tenant.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCountUsersByTenant tests the count used to refuse deleting populated tenants
func (suite *CatalogRepositoryTestSuite) TestCountUsersByTenant() {
	users := NewUserRepository(suite.baseTestSuite.DB)
	tenant := suite.factories.Tenant.Create()
	suite.Require().NoError(suite.tenants.Create(tenant))

	count, err := users.CountByTenantID(tenant.ID)
	suite.Require().NoError(err)
	suite.Zero(count)

	suite.Require().NoError(users.Create(suite.factories.User.WithTenant(tenant.ID)))
	suite.Require().NoError(users.Create(suite.factories.User.Create()))
	deactivated := suite.factories.User.WithTenant(tenant.ID)
	deactivated.IsActive = false
	suite.Require().NoError(users.Create(deactivated))

	count, err = users.CountByTenantID(tenant.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	active, err := users.CountActiveByTenantID(tenant.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), active)
}

// TestCatalogCounts tests the grouped catalog counts and the event total
func (suite *CatalogRepositoryTestSuite) TestCatalogCounts() {
	national := suite.factories.Catalog.WithType(models.CatalogTypeNationalHolidays)
	regional := suite.factories.Catalog.WithType(models.CatalogTypeRegionalHolidays)
	archived := suite.factories.Catalog.WithType(models.CatalogTypeNationalHolidays)
	archived.IsActive = false
	for _, c := range []*models.Catalog{national, regional, archived} {
		suite.Require().NoError(suite.catalogs.Create(c))
	}

	counts, err := suite.catalogs.CountByTypeAndStatus()
	suite.Require().NoError(err)
	suite.ElementsMatch([]CatalogCount{
		{Type: models.CatalogTypeNationalHolidays, IsActive: true, Count: 1},
		{Type: models.CatalogTypeNationalHolidays, IsActive: false, Count: 1},
		{Type: models.CatalogTypeRegionalHolidays, IsActive: true, Count: 1},
	}, counts)

	total, err := suite.events.Count()
	suite.Require().NoError(err)
	suite.Zero(total)
}

// TestCreateCatalogEventBatch tests that every event of a batch is stored
func (suite *CatalogRepositoryTestSuite) TestCreateCatalogEventBatch() {
	catalog := suite.factories.Catalog.Create()
	suite.Require().NoError(suite.catalogs.Create(catalog))

	events := make([]models.CatalogEvent, 3)
	for i := range events {
		events[i] = *suite.factories.CatalogEvent.InCatalog(catalog.ID, time.Date(2025, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC))
	}

	stored, err := suite.events.CreateBatch(events)
	suite.Require().NoError(err)
	suite.Equal(int64(3), stored)

	total, err := suite.events.Count()
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)

	stored, err = suite.events.CreateBatch(nil)
	suite.Require().NoError(err)
	suite.Zero(stored)
}

// TestCreateOrganizationEventBatch tests batch inserts and the per-tenant count
func (suite *CatalogRepositoryTestSuite) TestCreateOrganizationEventBatch() {
	orgEvents := NewOrganizationEventRepository(suite.baseTestSuite.DB)
	tenant := suite.factories.Tenant.Create()
	other := suite.factories.Tenant.Create()
	suite.Require().NoError(suite.tenants.Create(tenant))
	suite.Require().NoError(suite.tenants.Create(other))

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	batch := []models.OrganizationEvent{
		*suite.factories.OrganizationEvent.ForTenant(tenant.ID, start),
		*suite.factories.OrganizationEvent.ForTenant(tenant.ID, start.AddDate(0, 0, 7)),
	}
	stored, err := orgEvents.CreateBatch(batch)
	suite.Require().NoError(err)
	suite.Equal(int64(2), stored)
	suite.Require().NoError(orgEvents.Create(suite.factories.OrganizationEvent.ForTenant(other.ID, start)))

	count, err := orgEvents.CountByTenantID(tenant.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

// TestCatalogRepositoryTestSuite runs the test suite
func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
