package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tenant-calendar-backend/internal/config"
	"tenant-calendar-backend/internal/database"
	"tenant-calendar-backend/internal/database/models"

	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TenantData struct {
	Name     string `yaml:"name"`
	Slug     string `yaml:"slug"`
	Industry string `yaml:"industry"`
	Country  string `yaml:"country"`
}

type UserData struct {
	Email      string `yaml:"email"`
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	Role       string `yaml:"role"`
	TenantSlug string `yaml:"tenant_slug,omitempty"`
}

type CatalogData struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Type        string      `yaml:"type"`
	Events      []EventData `yaml:"events"`
}

type EventData struct {
	Title          string                 `yaml:"title"`
	Description    string                 `yaml:"description"`
	StartDate      string                 `yaml:"start_date"`
	EndDate        string                 `yaml:"end_date,omitempty"`
	RecurrenceRule string                 `yaml:"recurrence_rule,omitempty"`
	Tags           []string               `yaml:"tags,omitempty"`
	Industries     []string               `yaml:"industries,omitempty"`
	Country        string                 `yaml:"country,omitempty"`
	Region         string                 `yaml:"region,omitempty"`
	Metadata       map[string]interface{} `yaml:"metadata,omitempty"`
}

type SubscriptionData struct {
	TenantSlug string           `yaml:"tenant_slug"`
	Catalogs   []string         `yaml:"catalogs"`
	Events     []EventSelection `yaml:"events,omitempty"`
	OwnEvents  []OrgEventData   `yaml:"organization_events,omitempty"`
}

// EventSelection names one catalog event and whether the tenant shows or hides it
type EventSelection struct {
	Catalog string `yaml:"catalog"`
	Title   string `yaml:"title"`
	Visible bool   `yaml:"visible"`
}

type OrgEventData struct {
	EventData `yaml:",inline"`
	CreatedBy string `yaml:"created_by,omitempty"`
}

// File structures
type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type CatalogsFile struct {
	Catalogs []CatalogData `yaml:"catalogs"`
}

type SubscriptionsFile struct {
	Subscriptions []SubscriptionData `yaml:"subscriptions"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect with retry for dockerized Postgres startup
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var tenantFiles []TenantsFile
	if err := loadYAML(dataDir, "tenants", &tenantFiles); err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}
	var userFiles []UsersFile
	if err := loadYAML(dataDir, "users", &userFiles); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var catalogFiles []CatalogsFile
	if err := loadYAML(dataDir, "catalogs", &catalogFiles); err != nil {
		return fmt.Errorf("failed to load catalogs: %w", err)
	}
	var subscriptionFiles []SubscriptionsFile
	if err := loadYAML(dataDir, "subscriptions", &subscriptionFiles); err != nil {
		return fmt.Errorf("failed to load subscriptions: %w", err)
	}

	tenantMap := make(map[string]*models.Tenant)
	created, total := 0, 0
	for _, file := range tenantFiles {
		for _, data := range file.Tenants {
			tenant, isNew, err := createTenant(db, data)
			if err != nil {
				return fmt.Errorf("failed to create tenant %s: %w", data.Slug, err)
			}
			tenantMap[data.Slug] = tenant
			total++
			if isNew {
				created++
			}
		}
	}
	log.Printf("Tenants: %d created, %d total", created, total)

	userMap := make(map[string]*models.User)
	created, total = 0, 0
	for _, file := range userFiles {
		for _, data := range file.Users {
			user, isNew, err := createUser(db, data, tenantMap)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", data.Email, err)
			}
			userMap[data.Email] = user
			total++
			if isNew {
				created++
			}
		}
	}
	log.Printf("Users: %d created, %d total", created, total)

	catalogMap := make(map[string]*models.Catalog)
	eventMap := make(map[string]*models.CatalogEvent)
	created, total = 0, 0
	eventsCreated := 0
	for _, file := range catalogFiles {
		for _, data := range file.Catalogs {
			catalog, isNew, err := createCatalog(db, data)
			if err != nil {
				return fmt.Errorf("failed to create catalog %s: %w", data.Name, err)
			}
			catalogMap[data.Name] = catalog
			total++
			if isNew {
				created++
			}

			for _, eventData := range data.Events {
				event, isNew, err := createCatalogEvent(db, catalog, eventData)
				if err != nil {
					log.Printf("Warning: failed to create event %s in %s: %v", eventData.Title, data.Name, err)
					continue
				}
				eventMap[eventKey(data.Name, eventData.Title)] = event
				if isNew {
					eventsCreated++
				}
			}
		}
	}
	log.Printf("Catalogs: %d created, %d total (%d new events)", created, total, eventsCreated)

	subsCreated, orgEventsCreated := 0, 0
	for _, file := range subscriptionFiles {
		for _, data := range file.Subscriptions {
			tenant, ok := tenantMap[data.TenantSlug]
			if !ok {
				return fmt.Errorf("subscriptions reference unknown tenant %q", data.TenantSlug)
			}

			for _, name := range data.Catalogs {
				catalog, ok := catalogMap[name]
				if !ok {
					log.Printf("Warning: tenant %s subscribes to unknown catalog %q", tenant.Slug, name)
					continue
				}
				isNew, err := subscribeCatalog(db, tenant, catalog)
				if err != nil {
					return fmt.Errorf("failed to subscribe %s to %s: %w", tenant.Slug, name, err)
				}
				if isNew {
					subsCreated++
				}
			}

			for _, sel := range data.Events {
				event, ok := eventMap[eventKey(sel.Catalog, sel.Title)]
				if !ok {
					log.Printf("Warning: tenant %s selects unknown event %q in %q", tenant.Slug, sel.Title, sel.Catalog)
					continue
				}
				if err := selectEvent(db, tenant, event, sel.Visible); err != nil {
					return fmt.Errorf("failed to select event %s for %s: %w", sel.Title, tenant.Slug, err)
				}
			}

			for _, own := range data.OwnEvents {
				isNew, err := createOrganizationEvent(db, tenant, own, userMap)
				if err != nil {
					log.Printf("Warning: failed to create organization event %s: %v", own.Title, err)
					continue
				}
				if isNew {
					orgEventsCreated++
				}
			}
		}
	}
	log.Printf("Subscriptions: %d catalog subscriptions created, %d organization events created", subsCreated, orgEventsCreated)

	return nil
}

// loadYAML decodes every .yaml file under dataDir whose path contains kind
func loadYAML[T any](dataDir, kind string, out *[]T) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file T
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		*out = append(*out, file)
		return nil
	})
}

func eventKey(catalog, title string) string {
	return catalog + "/" + title
}

func createTenant(db *gorm.DB, data TenantData) (*models.Tenant, bool, error) {
	var tenant models.Tenant
	err := db.Where("slug = ?", data.Slug).First(&tenant).Error
	if err == nil {
		return &tenant, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query tenant: %w", err)
	}

	tenant = models.Tenant{
		Name:     data.Name,
		Slug:     data.Slug,
		Industry: data.Industry,
		Country:  data.Country,
		IsActive: true,
	}
	if err := db.Create(&tenant).Error; err != nil {
		return nil, false, err
	}
	return &tenant, true, nil
}

func createUser(db *gorm.DB, data UserData, tenantMap map[string]*models.Tenant) (*models.User, bool, error) {
	var user models.User
	err := db.Where("email = ?", data.Email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	role := models.Role(data.Role)
	if role == "" {
		role = models.RoleUser
	}
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", data.Role)
	}

	user = models.User{
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Role:      role,
		IsActive:  true,
	}
	if data.TenantSlug != "" {
		tenant, ok := tenantMap[data.TenantSlug]
		if !ok {
			return nil, false, fmt.Errorf("unknown tenant %q", data.TenantSlug)
		}
		user.TenantID = &tenant.ID
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func createCatalog(db *gorm.DB, data CatalogData) (*models.Catalog, bool, error) {
	var catalog models.Catalog
	err := db.Where("name = ?", data.Name).First(&catalog).Error
	if err == nil {
		return &catalog, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query catalog: %w", err)
	}

	catalogType := models.CatalogType(data.Type)
	if !catalogType.IsValid() {
		return nil, false, fmt.Errorf("invalid catalog type %q", data.Type)
	}

	catalog = models.Catalog{
		Name:        data.Name,
		Description: data.Description,
		Type:        catalogType,
		IsActive:    true,
	}
	if err := db.Omit("Events").Create(&catalog).Error; err != nil {
		return nil, false, err
	}
	return &catalog, true, nil
}

// parseSpan reads start and end dates. Missing end dates make a single-day event.
func parseSpan(data EventData) (time.Time, time.Time, error) {
	start, err := parseDate(data.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date: %w", err)
	}
	if data.EndDate == "" {
		return start, start.Add(24*time.Hour - time.Second), nil
	}
	end, err := parseDate(data.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date before start_date")
	}
	return start, end, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", value)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func createCatalogEvent(db *gorm.DB, catalog *models.Catalog, data EventData) (*models.CatalogEvent, bool, error) {
	var event models.CatalogEvent
	err := db.Where("catalog_id = ? AND title = ?", catalog.ID, data.Title).First(&event).Error
	if err == nil {
		return &event, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query event: %w", err)
	}

	start, end, err := parseSpan(data)
	if err != nil {
		return nil, false, err
	}
	metadataJSON, _ := json.Marshal(data.Metadata)

	event = models.CatalogEvent{
		CatalogID:      catalog.ID,
		Title:          data.Title,
		Description:    data.Description,
		StartDate:      start,
		EndDate:        end,
		IsRecurring:    data.RecurrenceRule != "",
		RecurrenceRule: optional(data.RecurrenceRule),
		Tags:           pq.StringArray(data.Tags),
		Industries:     pq.StringArray(data.Industries),
		Country:        optional(data.Country),
		Region:         optional(data.Region),
		Metadata:       metadataJSON,
	}
	if err := db.Omit("Catalog").Create(&event).Error; err != nil {
		return nil, false, err
	}
	return &event, true, nil
}

func subscribeCatalog(db *gorm.DB, tenant *models.Tenant, catalog *models.Catalog) (bool, error) {
	var sub models.CatalogSubscription
	err := db.Where("tenant_id = ? AND catalog_id = ?", tenant.ID, catalog.ID).First(&sub).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	sub = models.CatalogSubscription{TenantID: tenant.ID, CatalogID: catalog.ID, IsActive: true}
	return true, db.Omit("Catalog").Create(&sub).Error
}

// selectEvent writes the tenant's visibility choice, replacing any earlier one
func selectEvent(db *gorm.DB, tenant *models.Tenant, event *models.CatalogEvent, visible bool) error {
	var sub models.EventSubscription
	err := db.Where("tenant_id = ? AND catalog_event_id = ?", tenant.ID, event.ID).First(&sub).Error
	if err == nil {
		return db.Model(&sub).Update("is_visible", visible).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	sub = models.EventSubscription{TenantID: tenant.ID, CatalogEventID: event.ID, IsVisible: visible}
	return db.Select("*").Omit("CatalogEvent").Create(&sub).Error
}

func createOrganizationEvent(db *gorm.DB, tenant *models.Tenant, data OrgEventData, userMap map[string]*models.User) (bool, error) {
	var existing models.OrganizationEvent
	err := db.Where("tenant_id = ? AND title = ?", tenant.ID, data.Title).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	start, end, err := parseSpan(data.EventData)
	if err != nil {
		return false, err
	}
	metadataJSON, _ := json.Marshal(data.Metadata)

	event := models.OrganizationEvent{
		TenantID:       tenant.ID,
		Title:          data.Title,
		Description:    data.Description,
		StartDate:      start,
		EndDate:        end,
		IsRecurring:    data.RecurrenceRule != "",
		RecurrenceRule: optional(data.RecurrenceRule),
		Tags:           pq.StringArray(data.Tags),
		Metadata:       metadataJSON,
	}
	if user, ok := userMap[data.CreatedBy]; ok {
		event.CreatedByID = &user.ID
	}

	return true, db.Omit("CreatedBy").Create(&event).Error
}
