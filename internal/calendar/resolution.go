package calendar

import (
	"bytes"
	"slices"

	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
)

// SubscriptionType tells how a catalog event became visible to a tenant
type SubscriptionType string

const (
	SubscriptionTypeCatalog    SubscriptionType = "catalog"
	SubscriptionTypeIndividual SubscriptionType = "individual"
)

// EventRef identifies the catalog owning an individually subscribed event
type EventRef struct {
	CatalogID   uuid.UUID
	CatalogType models.CatalogType
}

// Resolution is the set of catalogs and individual events a tenant is
// entitled to see, computed fresh for every request.
type Resolution struct {
	TenantID uuid.UUID
	// Catalogs maps each actively subscribed catalog to its type
	Catalogs map[uuid.UUID]models.CatalogType
	// Events maps each visible event subscription to its owning catalog
	Events map[uuid.UUID]EventRef
	// Hidden holds events soft-hidden with isVisible=false
	Hidden map[uuid.UUID]struct{}
}

// NewResolution builds a Resolution from a tenant's subscription rows.
// Catalog subscriptions are expected to carry their Catalog and event
// subscriptions their CatalogEvent (with its Catalog) so that type filtering
// never needs another round trip.
func NewResolution(tenantID uuid.UUID, catalogSubs []models.CatalogSubscription, eventSubs []models.EventSubscription) Resolution {
	res := Resolution{
		TenantID: tenantID,
		Catalogs: make(map[uuid.UUID]models.CatalogType, len(catalogSubs)),
		Events:   make(map[uuid.UUID]EventRef, len(eventSubs)),
		Hidden:   make(map[uuid.UUID]struct{}),
	}

	for _, sub := range catalogSubs {
		if !sub.IsActive {
			continue
		}
		var catalogType models.CatalogType
		if sub.Catalog != nil {
			catalogType = sub.Catalog.Type
		}
		res.Catalogs[sub.CatalogID] = catalogType
	}

	for _, sub := range eventSubs {
		if !sub.IsVisible {
			res.Hidden[sub.CatalogEventID] = struct{}{}
			continue
		}
		var ref EventRef
		if sub.CatalogEvent != nil {
			ref.CatalogID = sub.CatalogEvent.CatalogID
			if sub.CatalogEvent.Catalog != nil {
				ref.CatalogType = sub.CatalogEvent.Catalog.Type
			}
		}
		res.Events[sub.CatalogEventID] = ref
	}

	return res
}

// HasAnySubscription reports whether the tenant can see any catalog event at all
func (r Resolution) HasAnySubscription() bool {
	return len(r.Catalogs) > 0 || len(r.Events) > 0
}

// IsCatalogSubscribed reports whether the catalog has an active subscription
func (r Resolution) IsCatalogSubscribed(catalogID uuid.UUID) bool {
	_, ok := r.Catalogs[catalogID]
	return ok
}

// IsEventSubscribed reports whether the event has a visible event subscription
func (r Resolution) IsEventSubscribed(eventID uuid.UUID) bool {
	_, ok := r.Events[eventID]
	return ok
}

// IsHidden reports whether the event was soft-hidden by the tenant
func (r Resolution) IsHidden(eventID uuid.UUID) bool {
	_, ok := r.Hidden[eventID]
	return ok
}

// SubscriptionTypeFor classifies a visible event: "individual" when its catalog
// is not subscribed, "catalog" otherwise.
func (r Resolution) SubscriptionTypeFor(catalogID uuid.UUID) SubscriptionType {
	if r.IsCatalogSubscribed(catalogID) {
		return SubscriptionTypeCatalog
	}
	return SubscriptionTypeIndividual
}

// SubscribedCatalogIDs returns the subscribed catalog IDs in a stable order
func (r Resolution) SubscribedCatalogIDs() []uuid.UUID {
	return sortedKeys(r.Catalogs)
}

// SubscribedEventIDs returns the individually subscribed event IDs in a stable order
func (r Resolution) SubscribedEventIDs() []uuid.UUID {
	return sortedKeys(r.Events)
}

// HiddenEventIDs returns the soft-hidden event IDs in a stable order
func (r Resolution) HiddenEventIDs() []uuid.UUID {
	return sortedKeys(r.Hidden)
}

func sortedKeys[V any](m map[uuid.UUID]V) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return ids
}
