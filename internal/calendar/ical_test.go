package calendar

import (
	"testing"
	"time"

	apperrors "tenant-calendar-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRenderICal(t *testing.T) {
	rule := "RRULE:FREQ=YEARLY;BYMONTH=1;BYMONTHDAY=1"
	events := []UnifiedEvent{
		{
			ID:             uuid.New(),
			Title:          "New Year",
			StartDate:      date("2025-01-01T00:00:00Z"),
			EndDate:        date("2025-01-01T23:59:59Z"),
			IsRecurring:    true,
			RecurrenceRule: &rule,
			Source:         EventSourceCatalog,
		},
		{
			ID:        uuid.New(),
			Title:     "Offsite",
			StartDate: date("2025-05-05T09:00:00Z"),
			EndDate:   date("2025-05-05T17:00:00Z"),
			Source:    EventSourceOrganization,
		},
	}

	out := RenderICal("Acme", events, time.Now())

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:New Year")
	assert.Contains(t, out, "SUMMARY:Offsite")
	assert.Contains(t, out, "RRULE:FREQ=YEARLY;BYMONTH=1;BYMONTHDAY=1")
	assert.NotContains(t, out, "RRULE:RRULE:")
	assert.Contains(t, out, "DTSTART:20250505T090000Z")
}

func TestValidateRecurrenceRule(t *testing.T) {
	assert.NoError(t, ValidateRecurrenceRule("FREQ=WEEKLY;BYDAY=MO"))
	assert.NoError(t, ValidateRecurrenceRule("RRULE:FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"))

	for _, rule := range []string{"", "   ", "FREQ=SOMETIMES", "not a rule"} {
		err := ValidateRecurrenceRule(rule)
		assert.True(t, apperrors.IsValidation(err), rule)
	}
}

func TestNormalizeRecurrenceRule(t *testing.T) {
	assert.Equal(t, "FREQ=DAILY", NormalizeRecurrenceRule(" rrule:FREQ=DAILY "))
	assert.Equal(t, "FREQ=DAILY", NormalizeRecurrenceRule("FREQ=DAILY"))
}
