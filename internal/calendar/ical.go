package calendar

import (
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

const icalProductID = "-//tenant-calendar-backend//unified calendar//EN"

// RenderICal serializes unified events as an iCalendar feed. Recurrence
// rules are copied through as RRULE lines without expansion.
func RenderICal(name string, events []UnifiedEvent, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icalProductID)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for _, e := range events {
		vevent := cal.AddEvent(e.ID.String() + "@" + string(e.Source))
		vevent.SetDtStampTime(stamp.UTC())
		vevent.SetCreatedTime(e.CreatedAt.UTC())
		vevent.SetStartAt(e.StartDate.UTC())
		vevent.SetEndAt(e.EndDate.UTC())
		vevent.SetSummary(e.Title)
		if e.Description != "" {
			vevent.SetDescription(e.Description)
		}
		if len(e.Tags) > 0 {
			vevent.SetProperty(ical.ComponentPropertyCategories, strings.Join(e.Tags, ","))
		}
		if e.IsRecurring && e.RecurrenceRule != nil {
			if rule := NormalizeRecurrenceRule(*e.RecurrenceRule); rule != "" {
				vevent.AddRrule(rule)
			}
		}
	}

	return cal.Serialize()
}
