package service

import (
	"context"
	"time"

	"tenant-calendar-backend/internal/calendar"
	"tenant-calendar-backend/internal/database/models"
	apperrors "tenant-calendar-backend/internal/errors"
	"tenant-calendar-backend/internal/logger"
	"tenant-calendar-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const icalCalendarName = "Unified calendar"

// CalendarService aggregates catalog and organization events into a tenant's
// unified calendar. It holds no per-tenant state.
type CalendarService struct {
	repo           repository.CalendarRepositoryInterface
	resolver       *SubscriptionResolver
	upcomingWindow time.Duration
	now            func() time.Time
}

// NewCalendarService creates a new calendar service
func NewCalendarService(repo repository.CalendarRepositoryInterface, upcomingWindow time.Duration) *CalendarService {
	if upcomingWindow <= 0 {
		upcomingWindow = calendar.DefaultUpcomingWindow
	}
	return &CalendarService{
		repo:           repo,
		resolver:       NewSubscriptionResolver(repo),
		upcomingWindow: upcomingWindow,
		now:            time.Now,
	}
}

// WithClock replaces the clock used for the upcoming window
func (s *CalendarService) WithClock(now func() time.Time) *CalendarService {
	s.now = now
	return s
}

// GetUnifiedCalendar returns the visible catalog events and the tenant's own
// events matching spec, merged by start date.
func (s *CalendarService) GetUnifiedCalendar(ctx context.Context, tenantID *uuid.UUID, spec calendar.FilterSpec) (*calendar.Result, error) {
	if tenantID == nil {
		return nil, apperrors.ErrNoOrganization
	}
	log := logger.WithContext(ctx).WithField("tenant_id", tenantID.String())

	res, err := s.resolver.Resolve(ctx, *tenantID)
	if err != nil {
		log.WithError(err).Error("failed to resolve subscriptions")
		return nil, err
	}

	catalogPred, orgPred := calendar.Compile(spec, res)

	var (
		catalogEvents []models.CatalogEvent
		orgEvents     []models.OrganizationEvent
	)
	g, gctx := errgroup.WithContext(ctx)
	if catalogPred.ShouldQuery() {
		g.Go(func() error {
			events, err := s.repo.FindCatalogEvents(gctx, catalogPred)
			if err != nil {
				return apperrors.NewAggregationError("fetch catalog events", err)
			}
			catalogEvents = events
			return nil
		})
	}
	if orgPred.ShouldQuery() {
		g.Go(func() error {
			events, err := s.repo.FindOrganizationEvents(gctx, orgPred)
			if err != nil {
				return apperrors.NewAggregationError("fetch organization events", err)
			}
			orgEvents = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("failed to fetch calendar events")
		return nil, err
	}

	unifiedCatalog := make([]calendar.UnifiedEvent, 0, len(catalogEvents))
	for _, e := range catalogEvents {
		unifiedCatalog = append(unifiedCatalog, calendar.FromCatalogEvent(e, res))
	}
	unifiedOrg := make([]calendar.UnifiedEvent, 0, len(orgEvents))
	for _, e := range orgEvents {
		unifiedOrg = append(unifiedOrg, calendar.FromOrganizationEvent(e))
	}

	result := calendar.NewResult(calendar.Merge(unifiedCatalog, unifiedOrg), res, spec)
	log.Debugf("calendar resolved %d catalog and %d organization events", result.Summary.CatalogEvents, result.Summary.OrganizationEvents)
	return &result, nil
}

// GetEventsByMonth returns the unified calendar restricted to one UTC calendar
// month. Caller-supplied dates are replaced by the month window.
func (s *CalendarService) GetEventsByMonth(ctx context.Context, tenantID *uuid.UUID, year, month int, spec calendar.FilterSpec) (*calendar.Result, error) {
	if tenantID == nil {
		return nil, apperrors.ErrNoOrganization
	}
	start, end, err := calendar.MonthWindow(year, month)
	if err != nil {
		return nil, err
	}

	result, err := s.GetUnifiedCalendar(ctx, tenantID, spec.WithDates(start, end))
	if err != nil {
		return nil, err
	}

	restricted := result.RestrictToWindow(start, end)
	return &restricted, nil
}

// GetCalendarStats counts the tenant's visible events, subscriptions and
// upcoming events using the same visibility rules as the listing.
func (s *CalendarService) GetCalendarStats(ctx context.Context, tenantID *uuid.UUID) (*calendar.Stats, error) {
	if tenantID == nil {
		return nil, apperrors.ErrNoOrganization
	}
	log := logger.WithContext(ctx).WithField("tenant_id", tenantID.String())

	res, err := s.resolver.Resolve(ctx, *tenantID)
	if err != nil {
		log.WithError(err).Error("failed to resolve subscriptions")
		return nil, err
	}

	catalogPred, orgPred := calendar.Compile(calendar.FilterSpec{}, res)
	upcoming := calendar.UpcomingRange(s.now(), s.upcomingWindow)
	upcomingCatalog := catalogPred.WithStart(upcoming)
	upcomingOrg := orgPred.WithStart(upcoming)

	stats := calendar.Stats{
		ActiveSubscriptions:          len(res.Catalogs),
		IndividualEventSubscriptions: len(res.Events),
		Upcoming: calendar.UpcomingStats{
			From:  *upcoming.From,
			Until: *upcoming.Before,
		},
	}
	var eventCounts map[uuid.UUID]int64

	g, gctx := errgroup.WithContext(ctx)
	count := func(op string, dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return apperrors.NewAggregationError(op, err)
			}
			*dst = n
			return nil
		})
	}
	count("count catalog events", &stats.CatalogEvents, func(ctx context.Context) (int64, error) {
		return s.repo.CountCatalogEvents(ctx, catalogPred)
	})
	count("count organization events", &stats.OrganizationEvents, func(ctx context.Context) (int64, error) {
		return s.repo.CountOrganizationEvents(ctx, orgPred)
	})
	count("count upcoming catalog events", &stats.Upcoming.CatalogEvents, func(ctx context.Context) (int64, error) {
		return s.repo.CountCatalogEvents(ctx, upcomingCatalog)
	})
	count("count upcoming organization events", &stats.Upcoming.OrganizationEvents, func(ctx context.Context) (int64, error) {
		return s.repo.CountOrganizationEvents(ctx, upcomingOrg)
	})
	g.Go(func() error {
		counts, err := s.repo.CountEventsByCatalog(gctx, res.SubscribedCatalogIDs())
		if err != nil {
			return apperrors.NewAggregationError("count events by catalog", err)
		}
		eventCounts = counts
		return nil
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("failed to compute calendar statistics")
		return nil, err
	}

	stats.TotalEvents = stats.CatalogEvents + stats.OrganizationEvents
	stats.Upcoming.Total = stats.Upcoming.CatalogEvents + stats.Upcoming.OrganizationEvents
	stats.SubscriptionsByType = calendar.BreakdownByType(res, eventCounts)
	return &stats, nil
}

// ExportICal renders the unified calendar matching spec as an iCalendar feed
func (s *CalendarService) ExportICal(ctx context.Context, tenantID *uuid.UUID, spec calendar.FilterSpec) (string, error) {
	result, err := s.GetUnifiedCalendar(ctx, tenantID, spec)
	if err != nil {
		return "", err
	}
	return calendar.RenderICal(icalCalendarName, result.Events, s.now()), nil
}
