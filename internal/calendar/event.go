package calendar

import (
	"sort"
	"time"

	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventSource tells which collection a unified event came from
type EventSource string

const (
	EventSourceCatalog      EventSource = "catalog"
	EventSourceOrganization EventSource = "organization"
)

// Creator identifies the user who created an organization event
type Creator struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

// SourceDetails carries the per-source provenance of a unified event.
// Catalog events fill the catalog fields, organization events fill CreatedBy.
type SourceDetails struct {
	CatalogID        *uuid.UUID         `json:"catalogId,omitempty"`
	CatalogName      string             `json:"catalogName,omitempty"`
	CatalogType      models.CatalogType `json:"catalogType,omitempty"`
	Country          *string            `json:"country,omitempty"`
	Region           *string            `json:"region,omitempty"`
	Industries       []string           `json:"industries,omitempty"`
	SubscriptionType SubscriptionType   `json:"subscriptionType,omitempty"`
	CreatedBy        *Creator           `json:"createdBy,omitempty"`
}

// UnifiedEvent is the common shape of catalog and organization events
type UnifiedEvent struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	StartDate      time.Time      `json:"startDate"`
	EndDate        time.Time      `json:"endDate"`
	IsRecurring    bool           `json:"isRecurring"`
	RecurrenceRule *string        `json:"recurrenceRule"`
	Tags           []string       `json:"tags"`
	Metadata       datatypes.JSON `json:"metadata"`
	Source         EventSource    `json:"source"`
	SourceDetails  SourceDetails  `json:"sourceDetails"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// FromCatalogEvent annotates a catalog event. The event's Catalog should be
// preloaded for the name and type to be filled.
func FromCatalogEvent(e models.CatalogEvent, res Resolution) UnifiedEvent {
	catalogID := e.CatalogID
	details := SourceDetails{
		CatalogID:        &catalogID,
		Country:          e.Country,
		Region:           e.Region,
		Industries:       nonNil(e.Industries),
		SubscriptionType: res.SubscriptionTypeFor(e.CatalogID),
	}
	if e.Catalog != nil {
		details.CatalogName = e.Catalog.Name
		details.CatalogType = e.Catalog.Type
	}

	return UnifiedEvent{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		StartDate:      e.StartDate,
		EndDate:        e.EndDate,
		IsRecurring:    e.IsRecurring,
		RecurrenceRule: e.RecurrenceRule,
		Tags:           nonNil(e.Tags),
		Metadata:       e.Metadata,
		Source:         EventSourceCatalog,
		SourceDetails:  details,
		CreatedAt:      e.CreatedAt,
	}
}

// FromOrganizationEvent annotates a tenant's own event
func FromOrganizationEvent(e models.OrganizationEvent) UnifiedEvent {
	var details SourceDetails
	if e.CreatedBy != nil {
		details.CreatedBy = &Creator{
			ID:        e.CreatedBy.ID,
			FirstName: e.CreatedBy.FirstName,
			LastName:  e.CreatedBy.LastName,
			Email:     e.CreatedBy.Email,
		}
	}

	return UnifiedEvent{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		StartDate:      e.StartDate,
		EndDate:        e.EndDate,
		IsRecurring:    e.IsRecurring,
		RecurrenceRule: e.RecurrenceRule,
		Tags:           nonNil(e.Tags),
		Metadata:       e.Metadata,
		Source:         EventSourceOrganization,
		SourceDetails:  details,
		CreatedAt:      e.CreatedAt,
	}
}

// Merge concatenates catalog events then organization events and sorts the
// result by start date. Ties keep concatenation order.
func Merge(catalogEvents, orgEvents []UnifiedEvent) []UnifiedEvent {
	merged := make([]UnifiedEvent, 0, len(catalogEvents)+len(orgEvents))
	merged = append(merged, catalogEvents...)
	merged = append(merged, orgEvents...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].StartDate.Before(merged[j].StartDate)
	})
	return merged
}

// Summary counts the events of a result
type Summary struct {
	Total                        int `json:"total"`
	CatalogEvents                int `json:"catalogEvents"`
	OrganizationEvents           int `json:"organizationEvents"`
	SubscribedCatalogs           int `json:"subscribedCatalogs"`
	IndividualEventSubscriptions int `json:"individualEventSubscriptions"`
}

// Summarize counts events by source alongside the tenant's subscription counts
func Summarize(events []UnifiedEvent, res Resolution) Summary {
	return countEvents(events, Summary{
		SubscribedCatalogs:           len(res.Catalogs),
		IndividualEventSubscriptions: len(res.Events),
	})
}

// countEvents replaces the event counts of s with those of events
func countEvents(events []UnifiedEvent, s Summary) Summary {
	s.Total = len(events)
	s.CatalogEvents = 0
	s.OrganizationEvents = 0
	for _, e := range events {
		switch e.Source {
		case EventSourceCatalog:
			s.CatalogEvents++
		case EventSourceOrganization:
			s.OrganizationEvents++
		}
	}
	return s
}

// Result is the response of a unified calendar query
type Result struct {
	Events  []UnifiedEvent `json:"events"`
	Summary Summary        `json:"summary"`
	Filters AppliedFilters `json:"filters"`
}

// NewResult assembles the events, their summary and the filter echo
func NewResult(events []UnifiedEvent, res Resolution, spec FilterSpec) Result {
	if events == nil {
		events = []UnifiedEvent{}
	}
	return Result{
		Events:  events,
		Summary: Summarize(events, res),
		Filters: spec.Applied(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
