package routes

import (
	"ooskills-backend/internal/adapters/http/handlers"
	"ooskills-backend/internal/adapters/http/middleware"
	"ooskills-backend/internal/adapters/persistence/repositories"
	"ooskills-backend/internal/config"
	"ooskills-backend/internal/core/cache"
	"ooskills-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	contentRepo := repositories.NewContentRepository(db)

	// One process-wide cache of resolved landing payloads
	contentCache := cache.NewStore()

	// Initialize services
	referralService := services.NewReferralService(userRepo)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, referralService, cfg)
	userService := services.NewUserService(userRepo, refreshTokenRepo)
	contentService := services.NewContentService(contentRepo, contentCache)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	referralHandler := handlers.NewReferralHandler(referralService, authService)
	landingHandler := handlers.NewLandingHandler(contentService)
	cmsHandler := handlers.NewCMSHandler(contentRepo, contentService)
	lookupHandler := handlers.NewLookupHandler()

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, authHandler, userHandler, referralHandler,
		landingHandler, cmsHandler, lookupHandler, authService)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	referralHandler *handlers.ReferralHandler,
	landingHandler *handlers.LandingHandler,
	cmsHandler *handlers.CMSHandler,
	lookupHandler *handlers.LookupHandler,
	authService *services.AuthService,
) {
	authRequired := middleware.AuthMiddleware(authService)

	// Auth routes (public, stricter rate limit)
	auth := router.Group("/auth")
	auth.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/logout-all", authRequired, authHandler.LogoutAll)
	auth.Get("/me", authRequired, authHandler.Me)

	// Public landing content
	landing := router.Group("/landing", middleware.LandingCache())
	landing.Get("/", landingHandler.LandingPage)
	landing.Get("/:section", landingHandler.Section)

	// Static lookups
	lookups := router.Group("/lookups", middleware.LookupCache())
	lookups.Get("/wilayas", lookupHandler.Wilayas)
	lookups.Get("/roles", lookupHandler.Roles)
	lookups.Get("/statuses", lookupHandler.Statuses)
	lookups.Get("/languages", lookupHandler.Languages)

	// Self-service user routes
	users := router.Group("/users", authRequired)
	users.Patch("/me", userHandler.UpdateProfile)
	users.Post("/me/password", middleware.StrictRateLimiter(), userHandler.ChangePassword)

	// Referral routes
	referrals := router.Group("/referrals", authRequired)
	referrals.Get("/", referralHandler.MyReferrals)
	referrals.Get("/my-code", referralHandler.MyCode)

	// Admin routes
	admin := router.Group("/admin", authRequired, middleware.AdminOnly())

	adminUsers := admin.Group("/users")
	adminUsers.Get("/", userHandler.ListUsers)
	adminUsers.Get("/:id", userHandler.GetUser)
	adminUsers.Patch("/:id", userHandler.UpdateUser)
	adminUsers.Delete("/:id", middleware.SuperAdminOnly(), userHandler.DeleteUser)

	cms := admin.Group("/cms")
	cms.Post("/invalidate-cache", middleware.StrictRateLimiter(), cmsHandler.FlushCache)

	cms.Get("/heroes", cmsHandler.ListHeroes)
	cms.Post("/heroes", cmsHandler.CreateHero)
	cms.Get("/heroes/:id", cmsHandler.GetHero)
	cms.Put("/heroes/:id", cmsHandler.UpdateHero)
	cms.Delete("/heroes/:id", cmsHandler.DeleteHero)

	cms.Get("/features", cmsHandler.ListFeaturesSections)
	cms.Post("/features", cmsHandler.CreateFeaturesSection)
	cms.Get("/features/:id", cmsHandler.GetFeaturesSection)
	cms.Put("/features/:id", cmsHandler.UpdateFeaturesSection)
	cms.Delete("/features/:id", cmsHandler.DeleteFeaturesSection)

	cms.Get("/feature-items", cmsHandler.ListFeatureItems)
	cms.Post("/feature-items", cmsHandler.CreateFeatureItem)
	cms.Put("/feature-items/:id", cmsHandler.UpdateFeatureItem)
	cms.Delete("/feature-items/:id", cmsHandler.DeleteFeatureItem)

	cms.Get("/partners", cmsHandler.ListPartners)
	cms.Post("/partners", cmsHandler.CreatePartner)
	cms.Put("/partners/:id", cmsHandler.UpdatePartner)
	cms.Delete("/partners/:id", cmsHandler.DeletePartner)

	cms.Get("/faq", cmsHandler.ListFAQItems)
	cms.Post("/faq", cmsHandler.CreateFAQItem)
	cms.Put("/faq/:id", cmsHandler.UpdateFAQItem)
	cms.Delete("/faq/:id", cmsHandler.DeleteFAQItem)

	cms.Get("/testimonials", cmsHandler.ListTestimonials)
	cms.Post("/testimonials", cmsHandler.CreateTestimonial)
	cms.Put("/testimonials/:id", cmsHandler.UpdateTestimonial)
	cms.Delete("/testimonials/:id", cmsHandler.DeleteTestimonial)
}
