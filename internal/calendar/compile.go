package calendar

import (
	"github.com/google/uuid"
)

// Compile turns a filter spec and a subscription resolution into one
// predicate per event source. Both predicates share the same date, tag and
// search constraints; country, region and catalog type only apply to catalog
// events.
func Compile(spec FilterSpec, res Resolution) (CatalogEventPredicate, OrganizationEventPredicate) {
	start := DateRange{From: spec.StartDate, To: spec.EndDate}

	catalogPred := CatalogEventPredicate{
		Enabled:        spec.Source.IncludesCatalog(),
		CatalogIDs:     res.SubscribedCatalogIDs(),
		EventIDs:       res.SubscribedEventIDs(),
		HiddenEventIDs: res.HiddenEventIDs(),
		Start:          start,
		Tags:           spec.Tags,
		Search:         spec.Search,
		Country:        spec.Country,
		Region:         spec.Region,
	}

	if spec.Type != "" {
		catalogPred.CatalogIDs = filterIDs(catalogPred.CatalogIDs, func(id uuid.UUID) bool {
			return res.Catalogs[id] == spec.Type
		})
		catalogPred.EventIDs = filterIDs(catalogPred.EventIDs, func(id uuid.UUID) bool {
			return res.Events[id].CatalogType == spec.Type
		})
	}

	if len(catalogPred.CatalogIDs) == 0 && len(catalogPred.EventIDs) == 0 {
		catalogPred.MatchNone = true
	}

	orgPred := OrganizationEventPredicate{
		Enabled:  spec.Source.IncludesOrganization(),
		TenantID: res.TenantID,
		Start:    start,
		Tags:     spec.Tags,
		Search:   spec.Search,
	}

	return catalogPred, orgPred
}

func filterIDs(ids []uuid.UUID, keep func(uuid.UUID) bool) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if keep(id) {
			out = append(out, id)
		}
	}
	return out
}
