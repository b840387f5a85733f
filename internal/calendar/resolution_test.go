package calendar

import (
	"testing"

	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewResolution(t *testing.T) {
	tenantID := uuid.New()
	holidays := catalogOf(models.CatalogTypeNationalHolidays)
	world := catalogOf(models.CatalogTypeWorldSpecialDays)
	regional := catalogOf(models.CatalogTypeRegionalHolidays)

	earthDay := catalogEvent(world, "Earth Day", date("2025-04-22T00:00:00Z"))
	newYear := catalogEvent(holidays, "New Year", date("2025-01-01T00:00:00Z"))

	catalogSubs := []models.CatalogSubscription{
		catalogSub(tenantID, holidays, true),
		catalogSub(tenantID, regional, false),
	}
	eventSubs := []models.EventSubscription{
		eventSub(tenantID, earthDay, true),
		eventSub(tenantID, newYear, false),
	}

	res := NewResolution(tenantID, catalogSubs, eventSubs)

	t.Run("only active catalog subscriptions count", func(t *testing.T) {
		assert.True(t, res.IsCatalogSubscribed(holidays.ID))
		assert.False(t, res.IsCatalogSubscribed(regional.ID))
		assert.Equal(t, models.CatalogTypeNationalHolidays, res.Catalogs[holidays.ID])
	})

	t.Run("visible event subscriptions are subscribed", func(t *testing.T) {
		assert.True(t, res.IsEventSubscribed(earthDay.ID))
		assert.Equal(t, EventRef{CatalogID: world.ID, CatalogType: models.CatalogTypeWorldSpecialDays}, res.Events[earthDay.ID])
	})

	t.Run("invisible event subscriptions are hidden", func(t *testing.T) {
		assert.False(t, res.IsEventSubscribed(newYear.ID))
		assert.True(t, res.IsHidden(newYear.ID))
		assert.Equal(t, []uuid.UUID{newYear.ID}, res.HiddenEventIDs())
	})

	t.Run("subscription type", func(t *testing.T) {
		assert.Equal(t, SubscriptionTypeCatalog, res.SubscriptionTypeFor(holidays.ID))
		assert.Equal(t, SubscriptionTypeIndividual, res.SubscriptionTypeFor(world.ID))
	})

	t.Run("has any subscription", func(t *testing.T) {
		assert.True(t, res.HasAnySubscription())
		assert.False(t, NewResolution(tenantID, nil, nil).HasAnySubscription())

		onlyHidden := NewResolution(tenantID, nil, []models.EventSubscription{eventSub(tenantID, newYear, false)})
		assert.False(t, onlyHidden.HasAnySubscription())
	})
}

func TestNewResolutionIsIdempotent(t *testing.T) {
	tenantID := uuid.New()
	holidays := catalogOf(models.CatalogTypeNationalHolidays)
	world := catalogOf(models.CatalogTypeWorldSpecialDays)
	earthDay := catalogEvent(world, "Earth Day", date("2025-04-22T00:00:00Z"))

	catalogSubs := []models.CatalogSubscription{catalogSub(tenantID, holidays, true), catalogSub(tenantID, world, true)}
	eventSubs := []models.EventSubscription{eventSub(tenantID, earthDay, true)}

	first := NewResolution(tenantID, catalogSubs, eventSubs)
	second := NewResolution(tenantID, catalogSubs, eventSubs)

	assert.Equal(t, first, second)
	assert.Equal(t, first.SubscribedCatalogIDs(), second.SubscribedCatalogIDs())
	assert.Equal(t, first.SubscribedEventIDs(), second.SubscribedEventIDs())
}
