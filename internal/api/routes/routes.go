package routes

import (
	"tenant-calendar-backend/internal/api/handlers"
	"tenant-calendar-backend/internal/api/middleware"
	"tenant-calendar-backend/internal/auth"
	"tenant-calendar-backend/internal/config"
	"tenant-calendar-backend/internal/repository"
	"tenant-calendar-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, authService *auth.AuthService) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	catalogEventRepo := repository.NewCatalogEventRepository(db)
	organizationEventRepo := repository.NewOrganizationEventRepository(db)
	catalogSubRepo := repository.NewCatalogSubscriptionRepository(db)
	eventSubRepo := repository.NewEventSubscriptionRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)

	// Initialize services
	calendarService := service.NewCalendarService(calendarRepo, cfg.UpcomingWindow())
	subscriptionService := service.NewSubscriptionService(tenantRepo, catalogRepo, catalogEventRepo, catalogSubRepo, eventSubRepo, validator)
	catalogService := service.NewCatalogService(catalogRepo, catalogEventRepo, eventSubRepo, validator)
	organizationEventService := service.NewOrganizationEventService(organizationEventRepo, validator)
	tenantService := service.NewTenantService(tenantRepo, userRepo, catalogSubRepo, eventSubRepo, organizationEventRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	organizationEventHandler := handlers.NewOrganizationEventHandler(organizationEventService)
	tenantHandler := handlers.NewTenantHandler(tenantService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	authMiddleware := auth.NewAuthMiddleware(authService)
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	can := authMiddleware.RequireCapability

	{
		// Unified calendar of the caller's organization
		cal := v1.Group("/calendar", can(auth.CapCalendarRead))
		{
			cal.GET("", calendarHandler.GetUnifiedCalendar)
			cal.GET("/stats", calendarHandler.GetCalendarStats)
			cal.GET("/month/:year/:month", calendarHandler.GetEventsByMonth)
			cal.GET("/export.ics", calendarHandler.ExportICal)
		}

		// Catalog routes
		catalogs := v1.Group("/catalogs")
		{
			catalogs.GET("", can(auth.CapCatalogRead), catalogHandler.ListCatalogs)
			catalogs.POST("", can(auth.CapCatalogManage), catalogHandler.CreateCatalog)
			catalogs.GET("/stats", can(auth.CapCatalogRead), catalogHandler.GetCatalogStats)
			catalogs.GET("/:id", can(auth.CapCatalogRead), catalogHandler.GetCatalog)
			catalogs.PUT("/:id", can(auth.CapCatalogManage), catalogHandler.UpdateCatalog)
			catalogs.DELETE("/:id", can(auth.CapCatalogManage), catalogHandler.DeleteCatalog)
			catalogs.GET("/:id/events", can(auth.CapCatalogRead), catalogHandler.ListCatalogEvents)
			catalogs.POST("/:id/events", can(auth.CapCatalogManage), catalogHandler.CreateCatalogEvent)
			catalogs.POST("/:id/events/bulk", can(auth.CapCatalogManage), catalogHandler.BulkCreateCatalogEvents)
			catalogs.GET("/events/:eventId", can(auth.CapCatalogRead), catalogHandler.GetCatalogEvent)
			catalogs.PUT("/events/:eventId", can(auth.CapCatalogManage), catalogHandler.UpdateCatalogEvent)
			catalogs.DELETE("/events/:eventId", can(auth.CapCatalogManage), catalogHandler.DeleteCatalogEvent)
		}

		// Tenant routes
		tenants := v1.Group("/tenants")
		{
			tenants.GET("", can(auth.CapTenantManage), tenantHandler.ListTenants)
			tenants.POST("", can(auth.CapTenantManage), tenantHandler.CreateTenant)
		}

		// Everything below a tenant id is restricted to that tenant's members
		tenant := tenants.Group("/:tenantId", authMiddleware.RequireTenantAccess("tenantId"))
		{
			tenant.GET("", can(auth.CapTenantRead), tenantHandler.GetTenant)
			tenant.GET("/stats", can(auth.CapTenantRead), tenantHandler.GetTenantStats)
			tenant.PUT("", can(auth.CapTenantUpdate), tenantHandler.UpdateTenant)
			tenant.DELETE("", can(auth.CapTenantManage), tenantHandler.DeleteTenant)

			tenant.GET("/subscriptions", can(auth.CapSubscriptionRead), subscriptionHandler.ListCatalogSubscriptions)
			tenant.GET("/subscriptions/available", can(auth.CapSubscriptionRead), subscriptionHandler.ListAvailableCatalogs)
			tenant.POST("/subscriptions", can(auth.CapSubscriptionManage), subscriptionHandler.SubscribeToCatalog)
			tenant.PUT("/subscriptions/:subscriptionId", can(auth.CapSubscriptionManage), subscriptionHandler.UpdateCatalogSubscription)
			tenant.DELETE("/subscriptions/:subscriptionId", can(auth.CapSubscriptionManage), subscriptionHandler.UnsubscribeFromCatalog)
			tenant.GET("/event-subscriptions", can(auth.CapSubscriptionRead), subscriptionHandler.ListEventSubscriptions)

			catalogEvent := tenant.Group("/catalogs/:catalogId/events/:eventId")
			{
				catalogEvent.GET("/subscription-status", can(auth.CapSubscriptionRead), subscriptionHandler.GetEventSubscriptionStatus)
				catalogEvent.POST("/subscribe", can(auth.CapSubscriptionManage), subscriptionHandler.SubscribeToEvent)
				catalogEvent.PUT("/visibility", can(auth.CapSubscriptionManage), subscriptionHandler.SetEventVisibility)
				catalogEvent.DELETE("/unsubscribe", can(auth.CapSubscriptionManage), subscriptionHandler.UnsubscribeFromEvent)
			}

			events := tenant.Group("/events")
			{
				events.GET("", can(auth.CapOrgEventRead), organizationEventHandler.ListEvents)
				events.POST("", can(auth.CapOrgEventWrite), organizationEventHandler.CreateEvent)
				events.POST("/bulk", can(auth.CapOrgEventBulk), organizationEventHandler.BulkCreateEvents)
				events.GET("/:id", can(auth.CapOrgEventRead), organizationEventHandler.GetEvent)
				events.PUT("/:id", can(auth.CapOrgEventWrite), organizationEventHandler.UpdateEvent)
				events.DELETE("/:id", can(auth.CapOrgEventWrite), organizationEventHandler.DeleteEvent)
			}
		}
	}

	return router
}
