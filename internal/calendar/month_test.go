package calendar

import (
	"testing"
	"time"

	"tenant-calendar-backend/internal/database/models"
	apperrors "tenant-calendar-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name      string
		year      string
		month     string
		wantYear  int
		wantMonth int
		wantErr   bool
	}{
		{name: "valid", year: "2025", month: "2", wantYear: 2025, wantMonth: 2},
		{name: "padded month", year: "2025", month: "02", wantYear: 2025, wantMonth: 2},
		{name: "month zero", year: "2025", month: "0", wantErr: true},
		{name: "month thirteen", year: "2025", month: "13", wantErr: true},
		{name: "non numeric year", year: "year", month: "1", wantErr: true},
		{name: "non numeric month", year: "2025", month: "feb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, err := ParseMonth(tt.year, tt.month)
			if tt.wantErr {
				assert.True(t, apperrors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestMonthWindow(t *testing.T) {
	t.Run("february of a leap year", func(t *testing.T) {
		start, end, err := MonthWindow(2024, 2)
		require.NoError(t, err)
		assert.Equal(t, date("2024-02-01T00:00:00Z"), start)
		assert.Equal(t, date("2024-03-01T00:00:00Z").Add(-time.Microsecond), end)
	})

	t.Run("december rolls into next year", func(t *testing.T) {
		start, end, err := MonthWindow(2025, 12)
		require.NoError(t, err)
		assert.Equal(t, date("2025-12-01T00:00:00Z"), start)
		assert.Equal(t, date("2026-01-01T00:00:00Z").Add(-time.Microsecond), end)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, _, err := MonthWindow(2025, 13)
		assert.ErrorIs(t, err, apperrors.ErrInvalidMonth)
	})
}

func TestRestrictToWindow(t *testing.T) {
	tenantID := uuid.New()
	holidays := catalogOf(models.CatalogTypeNationalHolidays)
	res := NewResolution(tenantID, []models.CatalogSubscription{catalogSub(tenantID, holidays, true)}, nil)
	start, end, err := MonthWindow(2025, 2)
	require.NoError(t, err)

	events := []UnifiedEvent{
		{Title: "last of january", StartDate: date("2025-01-31T23:59:59Z"), Source: EventSourceCatalog},
		{Title: "first of february", StartDate: start, Source: EventSourceCatalog},
		{Title: "last instant", StartDate: end, Source: EventSourceOrganization},
		{Title: "first of march", StartDate: date("2025-03-01T00:00:00Z"), Source: EventSourceOrganization},
	}
	result := NewResult(events, res, FilterSpec{}.WithDates(start, end)).RestrictToWindow(start, end)

	require.Len(t, result.Events, 2)
	assert.Equal(t, "first of february", result.Events[0].Title)
	assert.Equal(t, "last instant", result.Events[1].Title)
	assert.Equal(t, Summary{Total: 2, CatalogEvents: 1, OrganizationEvents: 1, SubscribedCatalogs: 1}, result.Summary)
}
