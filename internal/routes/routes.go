package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/domain/accommodations"
	"github.com/wandererhq/wanderer/internal/app/domain/auth"
	"github.com/wandererhq/wanderer/internal/app/domain/events"
	"github.com/wandererhq/wanderer/internal/app/domain/home"
	"github.com/wandererhq/wanderer/internal/app/domain/itineraries"
	"github.com/wandererhq/wanderer/internal/app/domain/profiles"
	"github.com/wandererhq/wanderer/internal/app/domain/restaurants"
	"github.com/wandererhq/wanderer/internal/app/domain/reviews"
	"github.com/wandererhq/wanderer/internal/app/domain/spots"
	"github.com/wandererhq/wanderer/internal/app/domain/weather"
	"github.com/wandererhq/wanderer/internal/app/middleware"
	"github.com/wandererhq/wanderer/internal/pkg/config"
)

// AppHandlers bundles every domain handler the router mounts.
type AppHandlers struct {
	Auth           *auth.Handler
	Spots          *spots.Handler
	Itineraries    *itineraries.Handler
	Reviews        *reviews.Handler
	Profiles       *profiles.Handler
	Restaurants    *restaurants.Handler
	Events         *events.Handler
	Accommodations *accommodations.Handler
	Weather        *weather.Handler
	Home           *home.Handler

	jwtService *auth.JWTService
	jwtConfig  auth.JWTConfig
	roles      middleware.RoleChecker
}

// Setup wires repositories, services and handlers onto the engine.
func Setup(r *gin.Engine, cfg *config.Config, dbPool *pgxpool.Pool, log *zap.Logger) {
	handlers := setupDependencies(cfg, dbPool, log)
	setupRouter(r, handlers, log)
}

func setupDependencies(cfg *config.Config, dbPool *pgxpool.Pool, log *zap.Logger) *AppHandlers {
	jwtService := auth.NewJWTService()
	jwtConfig := auth.JWTConfig{
		SecretKey:       cfg.Auth.JWTSecret,
		TokenExpiration: cfg.Auth.TokenExpiration,
		Logger:          log,
	}

	authRepo := auth.NewRepositoryImpl(dbPool, log)
	authService := auth.NewServiceImpl(authRepo, jwtConfig, log)

	spotRepo := spots.NewRepositoryImpl(dbPool, log)
	spotService := spots.NewServiceImpl(spotRepo, log)

	itineraryRepo := itineraries.NewRepositoryImpl(dbPool, log)
	itineraryService := itineraries.NewServiceImpl(itineraryRepo, spotRepo, log)

	reviewRepo := reviews.NewRepositoryImpl(dbPool, log)
	reviewService := reviews.NewServiceImpl(reviewRepo, spotRepo, log)

	profileRepo := profiles.NewRepositoryImpl(dbPool, log)
	profileService := profiles.NewServiceImpl(profileRepo, log)

	restaurantRepo := restaurants.NewRepositoryImpl(dbPool, log)
	restaurantService := restaurants.NewServiceImpl(restaurantRepo, log)

	eventRepo := events.NewRepositoryImpl(dbPool, log)
	eventService := events.NewServiceImpl(eventRepo, log)

	accommodationRepo := accommodations.NewRepositoryImpl(dbPool, log)
	accommodationService := accommodations.NewServiceImpl(accommodationRepo, log)

	weatherClient := weather.NewOpenWeatherClient(cfg.Weather, log)
	weatherService := weather.NewServiceImpl(weatherClient, cfg.Weather.City, log)

	homeRepo := home.NewRepositoryImpl(dbPool, log)
	homeService := home.NewServiceImpl(homeRepo, log)

	return &AppHandlers{
		Auth:           auth.NewHandler(authService, jwtConfig, log),
		Spots:          spots.NewHandler(spotService, log),
		Itineraries:    itineraries.NewHandler(itineraryService, log),
		Reviews:        reviews.NewHandler(reviewService, log),
		Profiles:       profiles.NewHandler(profileService, log),
		Restaurants:    restaurants.NewHandler(restaurantService, log),
		Events:         events.NewHandler(eventService, log),
		Accommodations: accommodations.NewHandler(accommodationService, log),
		Weather:        weather.NewHandler(weatherService, log),
		Home:           home.NewHandler(homeService, log),

		jwtService: jwtService,
		jwtConfig:  jwtConfig,
		roles:      authRepo,
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers, log *zap.Logger) {
	requireAuth := middleware.AuthRequired(h.jwtService, h.jwtConfig, log)
	optionalAuth := middleware.AuthOptional(h.jwtService, h.jwtConfig)
	requireAdmin := middleware.AdminRequired(h.roles, log)

	v1 := r.Group("/api/v1")

	// Public surface: browsing needs no session.
	v1.GET("/spots", h.Spots.ListSpots)
	v1.GET("/spots/:id", h.Spots.GetSpot)
	v1.GET("/spots/:id/reviews", h.Reviews.ListForSpot)
	v1.GET("/map/markers", h.Spots.MapMarkers)
	v1.GET("/restaurants", h.Restaurants.List)
	v1.GET("/restaurants/:id", h.Restaurants.Get)
	v1.GET("/events", h.Events.List)
	v1.GET("/events/:id", h.Events.Get)
	v1.GET("/accommodations", h.Accommodations.List)
	v1.GET("/accommodations/:id", h.Accommodations.Get)
	v1.GET("/weather", h.Weather.Current)
	v1.GET("/home/summary", h.Home.Summary)
	v1.GET("/onboarding/steps", h.Profiles.OnboardingSteps)

	// Itinerary generation previews recommendations without a session;
	// saving requires one.
	v1.POST("/itineraries/generate", h.Itineraries.Generate)

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
		authGroup.GET("/session", optionalAuth, h.Auth.Session)
	}

	authed := v1.Group("")
	authed.Use(requireAuth)
	{
		authed.POST("/itineraries", h.Itineraries.Save)
		authed.POST("/itineraries/quick", h.Itineraries.QuickTrip)
		authed.GET("/itineraries", h.Itineraries.List)
		authed.DELETE("/itineraries/:id", h.Itineraries.Delete)

		authed.POST("/spots/:id/reviews", h.Reviews.Create)
		authed.DELETE("/reviews/:id", h.Reviews.Delete)

		authed.GET("/profile", h.Profiles.GetProfile)
		authed.PUT("/profile", h.Profiles.UpdateProfile)
		authed.POST("/onboarding/complete", h.Profiles.CompleteOnboarding)
	}

	admin := v1.Group("/admin")
	admin.Use(requireAuth, requireAdmin)
	{
		admin.POST("/spots", h.Spots.CreateSpot)
		admin.PUT("/spots/:id", h.Spots.UpdateSpot)
		admin.DELETE("/spots/:id", h.Spots.DeleteSpot)

		admin.POST("/restaurants", h.Restaurants.Create)
		admin.PUT("/restaurants/:id", h.Restaurants.Update)
		admin.DELETE("/restaurants/:id", h.Restaurants.Delete)

		admin.POST("/events", h.Events.Create)
		admin.PUT("/events/:id", h.Events.Update)
		admin.DELETE("/events/:id", h.Events.Delete)

		admin.POST("/accommodations", h.Accommodations.Create)
		admin.PUT("/accommodations/:id", h.Accommodations.Update)
		admin.DELETE("/accommodations/:id", h.Accommodations.Delete)
	}
}
