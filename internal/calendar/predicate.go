package calendar

import (
	"slices"
	"strings"
	"time"

	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
)

// DateRange bounds an event's start date. From and To are inclusive,
// Before is exclusive. Nil bounds are open.
type DateRange struct {
	From   *time.Time
	To     *time.Time
	Before *time.Time
}

// IsZero reports whether the range places no constraint
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil && r.Before == nil
}

// Contains reports whether t falls inside the range
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	if r.Before != nil && !t.Before(*r.Before) {
		return false
	}
	return true
}

// CatalogEventPredicate selects the catalog events visible to a tenant.
// When MatchNone is set the result is empty and the store is never queried.
type CatalogEventPredicate struct {
	Enabled   bool
	MatchNone bool
	// An event qualifies when its catalog is in CatalogIDs and it is not in
	// HiddenEventIDs, or when its own ID is in EventIDs.
	CatalogIDs     []uuid.UUID
	EventIDs       []uuid.UUID
	HiddenEventIDs []uuid.UUID
	Start          DateRange
	Tags           []string
	Search         string
	Country        string
	Region         string
}

// ShouldQuery reports whether the predicate can match anything
func (p CatalogEventPredicate) ShouldQuery() bool {
	return p.Enabled && !p.MatchNone && (len(p.CatalogIDs) > 0 || len(p.EventIDs) > 0)
}

// WithStart returns a copy of the predicate with its start range replaced
func (p CatalogEventPredicate) WithStart(r DateRange) CatalogEventPredicate {
	p.Start = r
	return p
}

// Matches evaluates the predicate against a single event in memory.
// Store implementations translate the same rules into SQL.
func (p CatalogEventPredicate) Matches(e models.CatalogEvent) bool {
	if !p.ShouldQuery() {
		return false
	}
	inCatalog := slices.Contains(p.CatalogIDs, e.CatalogID) && !slices.Contains(p.HiddenEventIDs, e.ID)
	if !inCatalog && !slices.Contains(p.EventIDs, e.ID) {
		return false
	}
	if !p.Start.Contains(e.StartDate) {
		return false
	}
	if !overlaps(p.Tags, e.Tags) {
		return false
	}
	if !matchesSearch(p.Search, e.Title, e.Description) {
		return false
	}
	if p.Country != "" && (e.Country == nil || *e.Country != p.Country) {
		return false
	}
	if p.Region != "" && (e.Region == nil || *e.Region != p.Region) {
		return false
	}
	return true
}

// OrganizationEventPredicate selects a tenant's own events
type OrganizationEventPredicate struct {
	Enabled  bool
	TenantID uuid.UUID
	Start    DateRange
	Tags     []string
	Search   string
}

// ShouldQuery reports whether the predicate can match anything
func (p OrganizationEventPredicate) ShouldQuery() bool {
	return p.Enabled
}

// WithStart returns a copy of the predicate with its start range replaced
func (p OrganizationEventPredicate) WithStart(r DateRange) OrganizationEventPredicate {
	p.Start = r
	return p
}

// Matches evaluates the predicate against a single event in memory
func (p OrganizationEventPredicate) Matches(e models.OrganizationEvent) bool {
	if !p.ShouldQuery() || e.TenantID != p.TenantID {
		return false
	}
	return p.Start.Contains(e.StartDate) && overlaps(p.Tags, e.Tags) && matchesSearch(p.Search, e.Title, e.Description)
}

// empty want means no constraint
func overlaps(want, have []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, tag := range want {
		if slices.Contains(have, tag) {
			return true
		}
	}
	return false
}

// case-insensitive substring on title or description
func matchesSearch(search, title, description string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(title), search) || strings.Contains(strings.ToLower(description), search)
}
