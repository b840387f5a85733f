package calendar

import (
	"testing"

	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCatalogEvent(t *testing.T) {
	tenantID := uuid.New()
	holidays := catalogOf(models.CatalogTypeNationalHolidays)
	world := catalogOf(models.CatalogTypeWorldSpecialDays)
	newYear := catalogEvent(holidays, "New Year", date("2025-01-01T00:00:00Z"))
	newYear.Country = strPtr("DE")
	earthDay := catalogEvent(world, "Earth Day", date("2025-04-22T00:00:00Z"))

	res := NewResolution(tenantID,
		[]models.CatalogSubscription{catalogSub(tenantID, holidays, true)},
		[]models.EventSubscription{eventSub(tenantID, earthDay, true)},
	)

	byCatalog := FromCatalogEvent(newYear, res)
	assert.Equal(t, EventSourceCatalog, byCatalog.Source)
	require.NotNil(t, byCatalog.SourceDetails.CatalogID)
	assert.Equal(t, holidays.ID, *byCatalog.SourceDetails.CatalogID)
	assert.Equal(t, holidays.Name, byCatalog.SourceDetails.CatalogName)
	assert.Equal(t, models.CatalogTypeNationalHolidays, byCatalog.SourceDetails.CatalogType)
	assert.Equal(t, "DE", *byCatalog.SourceDetails.Country)
	assert.Equal(t, SubscriptionTypeCatalog, byCatalog.SourceDetails.SubscriptionType)
	assert.NotNil(t, byCatalog.Tags)

	individual := FromCatalogEvent(earthDay, res)
	assert.Equal(t, SubscriptionTypeIndividual, individual.SourceDetails.SubscriptionType)
}

func TestFromOrganizationEvent(t *testing.T) {
	creator := &models.User{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
	creator.ID = uuid.New()
	e := models.OrganizationEvent{TenantID: uuid.New(), Title: "Offsite", StartDate: date("2025-05-05T09:00:00Z"), CreatedBy: creator}

	unified := FromOrganizationEvent(e)
	assert.Equal(t, EventSourceOrganization, unified.Source)
	require.NotNil(t, unified.SourceDetails.CreatedBy)
	assert.Equal(t, Creator{ID: creator.ID, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, *unified.SourceDetails.CreatedBy)
	assert.Nil(t, unified.SourceDetails.CatalogID)

	e.CreatedBy = nil
	assert.Nil(t, FromOrganizationEvent(e).SourceDetails.CreatedBy)
}

func TestMergeIsStable(t *testing.T) {
	same := date("2025-03-01T00:00:00Z")
	catalogEvents := []UnifiedEvent{
		{ID: uuid.New(), Title: "c-late", StartDate: date("2025-03-05T00:00:00Z"), Source: EventSourceCatalog},
		{ID: uuid.New(), Title: "c-tie-1", StartDate: same, Source: EventSourceCatalog},
		{ID: uuid.New(), Title: "c-tie-2", StartDate: same, Source: EventSourceCatalog},
	}
	orgEvents := []UnifiedEvent{
		{ID: uuid.New(), Title: "o-tie", StartDate: same, Source: EventSourceOrganization},
		{ID: uuid.New(), Title: "o-early", StartDate: date("2025-02-01T00:00:00Z"), Source: EventSourceOrganization},
	}

	merged := Merge(catalogEvents, orgEvents)

	titles := make([]string, len(merged))
	for i, e := range merged {
		titles[i] = e.Title
	}
	assert.Equal(t, []string{"o-early", "c-tie-1", "c-tie-2", "o-tie", "c-late"}, titles)

	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].StartDate.Before(merged[i-1].StartDate))
	}
}

func TestNewResult(t *testing.T) {
	tenantID := uuid.New()
	holidays := catalogOf(models.CatalogTypeNationalHolidays)
	res := NewResolution(tenantID, []models.CatalogSubscription{catalogSub(tenantID, holidays, true)}, nil)

	events := []UnifiedEvent{
		{Source: EventSourceCatalog},
		{Source: EventSourceOrganization},
		{Source: EventSourceOrganization},
	}
	result := NewResult(events, res, FilterSpec{})

	assert.Equal(t, Summary{Total: 3, CatalogEvents: 1, OrganizationEvents: 2, SubscribedCatalogs: 1}, result.Summary)
	assert.Equal(t, SourceAll, result.Filters.Source)

	empty := NewResult(nil, res, FilterSpec{})
	assert.NotNil(t, empty.Events)
	assert.Zero(t, empty.Summary.Total)
}
