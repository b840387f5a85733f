package service

import (
	"context"

	"tenant-calendar-backend/internal/calendar"
	"tenant-calendar-backend/internal/database/models"
	apperrors "tenant-calendar-backend/internal/errors"
	"tenant-calendar-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// SubscriptionResolver computes the catalogs and events a tenant can see.
// Nothing is cached: every call reads the current subscription rows.
type SubscriptionResolver struct {
	repo repository.CalendarRepositoryInterface
}

// NewSubscriptionResolver creates a new subscription resolver
func NewSubscriptionResolver(repo repository.CalendarRepositoryInterface) *SubscriptionResolver {
	return &SubscriptionResolver{repo: repo}
}

// Resolve reads a tenant's catalog and event subscriptions and builds the resolution
func (r *SubscriptionResolver) Resolve(ctx context.Context, tenantID uuid.UUID) (calendar.Resolution, error) {
	var (
		catalogSubs []models.CatalogSubscription
		eventSubs   []models.EventSubscription
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		subs, err := r.repo.ListActiveCatalogSubscriptions(gctx, tenantID)
		if err != nil {
			return apperrors.NewAggregationError("list catalog subscriptions", err)
		}
		catalogSubs = subs
		return nil
	})
	g.Go(func() error {
		subs, err := r.repo.ListEventSubscriptions(gctx, tenantID)
		if err != nil {
			return apperrors.NewAggregationError("list event subscriptions", err)
		}
		eventSubs = subs
		return nil
	})
	if err := g.Wait(); err != nil {
		return calendar.Resolution{}, err
	}

	return calendar.NewResolution(tenantID, catalogSubs, eventSubs), nil
}
