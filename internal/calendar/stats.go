package calendar

import (
	"time"

	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
)

// DefaultUpcomingWindow is used when no upcoming window is configured
const DefaultUpcomingWindow = 30 * 24 * time.Hour

// TypeBreakdown counts the subscribed catalogs of one type and their events
type TypeBreakdown struct {
	Count  int   `json:"count"`
	Events int64 `json:"events"`
}

// UpcomingStats counts visible events starting within the upcoming window
type UpcomingStats struct {
	Total              int64     `json:"total"`
	CatalogEvents      int64     `json:"catalogEvents"`
	OrganizationEvents int64     `json:"organizationEvents"`
	From               time.Time `json:"from"`
	Until              time.Time `json:"until"`
}

// Stats summarizes a tenant's calendar
type Stats struct {
	TotalEvents                  int64                                `json:"totalEvents"`
	CatalogEvents                int64                                `json:"catalogEvents"`
	OrganizationEvents           int64                                `json:"organizationEvents"`
	ActiveSubscriptions          int                                  `json:"activeSubscriptions"`
	IndividualEventSubscriptions int                                  `json:"individualEventSubscriptions"`
	SubscriptionsByType          map[models.CatalogType]TypeBreakdown `json:"subscriptionsByType"`
	Upcoming                     UpcomingStats                        `json:"upcoming"`
}

// UpcomingRange is the half-open window [now, now+window)
func UpcomingRange(now time.Time, window time.Duration) DateRange {
	if window <= 0 {
		window = DefaultUpcomingWindow
	}
	from := now.UTC()
	before := from.Add(window)
	return DateRange{From: &from, Before: &before}
}

// BreakdownByType groups subscribed catalogs by type. Individually
// subscribed events are not included. eventCounts maps catalog IDs to the
// number of events they hold.
func BreakdownByType(res Resolution, eventCounts map[uuid.UUID]int64) map[models.CatalogType]TypeBreakdown {
	breakdown := make(map[models.CatalogType]TypeBreakdown)
	for catalogID, catalogType := range res.Catalogs {
		b := breakdown[catalogType]
		b.Count++
		b.Events += eventCounts[catalogID]
		breakdown[catalogType] = b
	}
	return breakdown
}
