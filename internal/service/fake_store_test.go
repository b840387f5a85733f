package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"tenant-calendar-backend/internal/calendar"
	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
)

// fakeCalendarStore keeps calendar rows in memory and evaluates predicates
// with their Matches methods, mirroring what the SQL store does.
type fakeCalendarStore struct {
	mu                sync.Mutex
	catalogs          map[uuid.UUID]*models.Catalog
	catalogEvents     []models.CatalogEvent
	orgEvents         []models.OrganizationEvent
	catalogSubs       []models.CatalogSubscription
	eventSubs         []models.EventSubscription
	catalogEventCalls int
	orgEventCalls     int
}

func newFakeCalendarStore() *fakeCalendarStore {
	return &fakeCalendarStore{catalogs: make(map[uuid.UUID]*models.Catalog)}
}

func (s *fakeCalendarStore) addCatalog(name string, t models.CatalogType) *models.Catalog {
	c := &models.Catalog{Name: name, Type: t, IsActive: true}
	c.ID = uuid.New()
	s.catalogs[c.ID] = c
	return c
}

func (s *fakeCalendarStore) addCatalogEvent(catalog *models.Catalog, title string, start time.Time, tags ...string) models.CatalogEvent {
	e := models.CatalogEvent{
		CatalogID: catalog.ID,
		Title:     title,
		StartDate: start,
		EndDate:   start.Add(time.Hour),
		Tags:      tags,
	}
	e.ID = uuid.New()
	s.catalogEvents = append(s.catalogEvents, e)
	return e
}

func (s *fakeCalendarStore) addOrgEvent(tenantID uuid.UUID, title string, start time.Time, tags ...string) models.OrganizationEvent {
	e := models.OrganizationEvent{
		TenantID:  tenantID,
		Title:     title,
		StartDate: start,
		EndDate:   start.Add(time.Hour),
		Tags:      tags,
	}
	e.ID = uuid.New()
	s.orgEvents = append(s.orgEvents, e)
	return e
}

func (s *fakeCalendarStore) subscribeCatalog(tenantID uuid.UUID, catalog *models.Catalog, active bool) models.CatalogSubscription {
	sub := models.CatalogSubscription{TenantID: tenantID, CatalogID: catalog.ID, IsActive: active}
	sub.ID = uuid.New()
	s.catalogSubs = append(s.catalogSubs, sub)
	return sub
}

func (s *fakeCalendarStore) subscribeEvent(tenantID uuid.UUID, event models.CatalogEvent, visible bool) models.EventSubscription {
	sub := models.EventSubscription{TenantID: tenantID, CatalogEventID: event.ID, IsVisible: visible}
	sub.ID = uuid.New()
	s.eventSubs = append(s.eventSubs, sub)
	return sub
}

func (s *fakeCalendarStore) unsubscribeEvent(id uuid.UUID) {
	kept := s.eventSubs[:0]
	for _, sub := range s.eventSubs {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	s.eventSubs = kept
}

func (s *fakeCalendarStore) unsubscribeCatalog(id uuid.UUID) {
	kept := s.catalogSubs[:0]
	for _, sub := range s.catalogSubs {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	s.catalogSubs = kept
}

func (s *fakeCalendarStore) withCatalog(e models.CatalogEvent) models.CatalogEvent {
	e.Catalog = s.catalogs[e.CatalogID]
	return e
}

func (s *fakeCalendarStore) ListActiveCatalogSubscriptions(_ context.Context, tenantID uuid.UUID) ([]models.CatalogSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.CatalogSubscription
	for _, sub := range s.catalogSubs {
		if sub.TenantID == tenantID && sub.IsActive {
			sub.Catalog = s.catalogs[sub.CatalogID]
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *fakeCalendarStore) ListEventSubscriptions(_ context.Context, tenantID uuid.UUID) ([]models.EventSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.EventSubscription
	for _, sub := range s.eventSubs {
		if sub.TenantID != tenantID {
			continue
		}
		for _, e := range s.catalogEvents {
			if e.ID == sub.CatalogEventID {
				event := s.withCatalog(e)
				sub.CatalogEvent = &event
			}
		}
		out = append(out, sub)
	}
	return out, nil
}

func (s *fakeCalendarStore) FindCatalogEvents(_ context.Context, pred calendar.CatalogEventPredicate) ([]models.CatalogEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogEventCalls++
	var out []models.CatalogEvent
	for _, e := range s.catalogEvents {
		if pred.Matches(e) {
			out = append(out, s.withCatalog(e))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (s *fakeCalendarStore) FindOrganizationEvents(_ context.Context, pred calendar.OrganizationEventPredicate) ([]models.OrganizationEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgEventCalls++
	var out []models.OrganizationEvent
	for _, e := range s.orgEvents {
		if pred.Matches(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (s *fakeCalendarStore) CountCatalogEvents(ctx context.Context, pred calendar.CatalogEventPredicate) (int64, error) {
	if !pred.ShouldQuery() {
		return 0, nil
	}
	events, err := s.FindCatalogEvents(ctx, pred)
	return int64(len(events)), err
}

func (s *fakeCalendarStore) CountOrganizationEvents(ctx context.Context, pred calendar.OrganizationEventPredicate) (int64, error) {
	if !pred.ShouldQuery() {
		return 0, nil
	}
	events, err := s.FindOrganizationEvents(ctx, pred)
	return int64(len(events)), err
}

func (s *fakeCalendarStore) CountEventsByCatalog(_ context.Context, catalogIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[uuid.UUID]int64)
	for _, id := range catalogIDs {
		for _, e := range s.catalogEvents {
			if e.CatalogID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

func (s *fakeCalendarStore) resetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogEventCalls = 0
	s.orgEventCalls = 0
}
