package repository

import (
	"context"
	"strings"

	"tenant-calendar-backend/internal/calendar"
	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CalendarRepository serves the read paths of calendar aggregation. Every
// method honours the request context.
type CalendarRepository struct {
	db *gorm.DB
}

// NewCalendarRepository creates a new calendar repository
func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// ListActiveCatalogSubscriptions retrieves a tenant's active catalog subscriptions with their catalogs
func (r *CalendarRepository) ListActiveCatalogSubscriptions(ctx context.Context, tenantID uuid.UUID) ([]models.CatalogSubscription, error) {
	var subs []models.CatalogSubscription
	err := r.db.WithContext(ctx).
		Preload("Catalog").
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// ListEventSubscriptions retrieves all of a tenant's event subscriptions,
// visible or not, with each event's catalog.
func (r *CalendarRepository) ListEventSubscriptions(ctx context.Context, tenantID uuid.UUID) ([]models.EventSubscription, error) {
	var subs []models.EventSubscription
	err := r.db.WithContext(ctx).
		Preload("CatalogEvent.Catalog").
		Where("tenant_id = ?", tenantID).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// FindCatalogEvents retrieves the catalog events selected by pred with their catalogs
func (r *CalendarRepository) FindCatalogEvents(ctx context.Context, pred calendar.CatalogEventPredicate) ([]models.CatalogEvent, error) {
	if !pred.ShouldQuery() {
		return []models.CatalogEvent{}, nil
	}

	var events []models.CatalogEvent
	err := applyCatalogEventPredicate(r.db.WithContext(ctx).Model(&models.CatalogEvent{}), pred).
		Preload("Catalog").
		Order("start_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// FindOrganizationEvents retrieves the organization events selected by pred with their creators
func (r *CalendarRepository) FindOrganizationEvents(ctx context.Context, pred calendar.OrganizationEventPredicate) ([]models.OrganizationEvent, error) {
	if !pred.ShouldQuery() {
		return []models.OrganizationEvent{}, nil
	}

	var events []models.OrganizationEvent
	err := applyOrganizationEventPredicate(r.db.WithContext(ctx).Model(&models.OrganizationEvent{}), pred).
		Preload("CreatedBy").
		Order("start_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CountCatalogEvents counts the distinct catalog events selected by pred
func (r *CalendarRepository) CountCatalogEvents(ctx context.Context, pred calendar.CatalogEventPredicate) (int64, error) {
	if !pred.ShouldQuery() {
		return 0, nil
	}

	var count int64
	err := applyCatalogEventPredicate(r.db.WithContext(ctx).Model(&models.CatalogEvent{}), pred).
		Count(&count).Error
	return count, err
}

// CountOrganizationEvents counts the organization events selected by pred
func (r *CalendarRepository) CountOrganizationEvents(ctx context.Context, pred calendar.OrganizationEventPredicate) (int64, error) {
	if !pred.ShouldQuery() {
		return 0, nil
	}

	var count int64
	err := applyOrganizationEventPredicate(r.db.WithContext(ctx).Model(&models.OrganizationEvent{}), pred).
		Count(&count).Error
	return count, err
}

// CountEventsByCatalog counts the events of each catalog
func (r *CalendarRepository) CountEventsByCatalog(ctx context.Context, catalogIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return countEventsByCatalog(r.db.WithContext(ctx), catalogIDs)
}

func applyCatalogEventPredicate(q *gorm.DB, p calendar.CatalogEventPredicate) *gorm.DB {
	// (catalog gate AND NOT hidden) OR individually subscribed
	var gate []string
	var args []interface{}
	if len(p.CatalogIDs) > 0 {
		byCatalog := "catalog_id IN ?"
		args = append(args, p.CatalogIDs)
		if len(p.HiddenEventIDs) > 0 {
			byCatalog = "(" + byCatalog + " AND id NOT IN ?)"
			args = append(args, p.HiddenEventIDs)
		}
		gate = append(gate, byCatalog)
	}
	if len(p.EventIDs) > 0 {
		gate = append(gate, "id IN ?")
		args = append(args, p.EventIDs)
	}
	q = q.Where("("+strings.Join(gate, " OR ")+")", args...)

	q = applyStartRange(q, p.Start)
	q = applyTagsAndSearch(q, p.Tags, p.Search)

	if p.Country != "" {
		q = q.Where("country = ?", p.Country)
	}
	if p.Region != "" {
		q = q.Where("region = ?", p.Region)
	}
	return q
}

func applyOrganizationEventPredicate(q *gorm.DB, p calendar.OrganizationEventPredicate) *gorm.DB {
	q = q.Where("tenant_id = ?", p.TenantID)
	q = applyStartRange(q, p.Start)
	return applyTagsAndSearch(q, p.Tags, p.Search)
}

func applyStartRange(q *gorm.DB, r calendar.DateRange) *gorm.DB {
	if r.From != nil {
		q = q.Where("start_date >= ?", *r.From)
	}
	if r.To != nil {
		q = q.Where("start_date <= ?", *r.To)
	}
	if r.Before != nil {
		q = q.Where("start_date < ?", *r.Before)
	}
	return q
}

func applyTagsAndSearch(q *gorm.DB, tags []string, search string) *gorm.DB {
	if len(tags) > 0 {
		q = q.Where("tags && ?", pq.StringArray(tags))
	}
	if search != "" {
		pattern := "%" + escapeLike(search) + "%"
		q = q.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
