package calendar

import (
	"time"

	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func catalogOf(t models.CatalogType) *models.Catalog {
	c := &models.Catalog{Name: string(t) + " catalog", Type: t, IsActive: true}
	c.ID = uuid.New()
	return c
}

func catalogEvent(catalog *models.Catalog, title string, start time.Time) models.CatalogEvent {
	e := models.CatalogEvent{
		CatalogID: catalog.ID,
		Title:     title,
		StartDate: start,
		EndDate:   start.Add(24*time.Hour - time.Second),
		Catalog:   catalog,
	}
	e.ID = uuid.New()
	return e
}

func catalogSub(tenantID uuid.UUID, catalog *models.Catalog, active bool) models.CatalogSubscription {
	s := models.CatalogSubscription{TenantID: tenantID, CatalogID: catalog.ID, IsActive: active, Catalog: catalog}
	s.ID = uuid.New()
	return s
}

func eventSub(tenantID uuid.UUID, event models.CatalogEvent, visible bool) models.EventSubscription {
	ev := event
	s := models.EventSubscription{TenantID: tenantID, CatalogEventID: event.ID, IsVisible: visible, CatalogEvent: &ev}
	s.ID = uuid.New()
	return s
}
