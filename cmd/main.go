package main

import (
	"net/http"

	"consulting-site/internal/handler"
	mid "consulting-site/internal/middleware"
	"consulting-site/pkg/config"
	"consulting-site/pkg/database"
	"consulting-site/pkg/imagehost"
	"consulting-site/pkg/logger"
	"consulting-site/pkg/session"
	"consulting-site/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (reads the optional .env file itself)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting consulting-site", appConfig.LogFields()...)

	// Initialize the admin session utility
	session.Initialize(&appConfig.Session)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize handlers that carry configuration
	handler.InitAuthHandler(appConfig)
	handler.InitMasterclassHandler(appConfig)
	handler.InitUploadHandler(imagehost.NewClient(&appConfig.ImageHost, log))
	if appConfig.ImageHost.APIKey == "" {
		log.Warn("Image host API key not set, media uploads will be rejected")
	}

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public API routes
	api := e.Group("/api")
	api.GET("/publications", handler.ListPublications)
	api.GET("/publications/:id", handler.GetPublication)
	api.GET("/categories", handler.ListCategories)
	api.GET("/categories/:id", handler.GetCategory)
	api.GET("/consultancy", handler.ListServices)
	api.GET("/consultancy/features", handler.ListFeatures)
	api.GET("/consultancy/features/:id", handler.GetFeature)
	api.GET("/blog", handler.ListBlogPosts)
	api.GET("/masterclasses", handler.ListMasterclasses)
	api.GET("/masterclasses/:id", handler.GetMasterclass)
	api.POST("/masterclasses/register", handler.RegisterForMasterclass)
	api.GET("/gallery", handler.ListGalleryItems)
	api.GET("/site/config", handler.GetSiteConfig)
	api.GET("/site/hero", handler.GetHeroConfig)
	api.GET("/site/about", handler.GetAboutPage)
	api.GET("/site/social-media", handler.ListSocialMediaLinks)
	api.POST("/contact", handler.SubmitContactMessage)
	api.POST("/newsletter", handler.SubscribeNewsletter)
	api.POST("/analytics/track", handler.TrackPageView)

	// Admin API routes - gated by the session cookie except the login
	// endpoint itself
	admin := api.Group("/admin", mid.SessionMiddleware)
	admin.POST("/login", handler.Login)
	admin.POST("/logout", handler.Logout)
	admin.GET("/check-session", handler.CheckSession)

	admin.POST("/publications", handler.CreatePublication)
	admin.PUT("/publications/:id", handler.UpdatePublication)
	admin.DELETE("/publications/:id", handler.DeletePublication)

	admin.POST("/categories", handler.CreateCategory)
	admin.PUT("/categories/:id", handler.UpdateCategory)
	admin.DELETE("/categories/:id", handler.DeleteCategory)

	admin.POST("/consultancy", handler.CreateService)
	admin.PUT("/consultancy/:id", handler.UpdateService)
	admin.DELETE("/consultancy/:id", handler.DeleteService)
	admin.POST("/consultancy/features", handler.CreateFeature)
	admin.PUT("/consultancy/features/:id", handler.UpdateFeature)
	admin.DELETE("/consultancy/features/:id", handler.DeleteFeature)

	admin.POST("/blog", handler.CreateBlogPost)
	admin.PUT("/blog/:id", handler.UpdateBlogPost)
	admin.DELETE("/blog/:id", handler.DeleteBlogPost)

	admin.POST("/masterclasses", handler.CreateMasterclass)
	admin.PUT("/masterclasses/:id", handler.UpdateMasterclass)
	admin.DELETE("/masterclasses/:id", handler.DeleteMasterclass)
	admin.GET("/masterclasses/registrations", handler.ListRegistrations)
	admin.DELETE("/masterclasses/registrations/:id", handler.DeleteRegistration)

	admin.POST("/gallery", handler.CreateGalleryItem)
	admin.PUT("/gallery/:id", handler.UpdateGalleryItem)
	admin.DELETE("/gallery/:id", handler.DeleteGalleryItem)

	admin.PUT("/site/config", handler.UpdateSiteConfig)
	admin.PUT("/site/hero", handler.UpdateHeroConfig)
	admin.PUT("/site/hero/:id/activate", handler.ActivateHeroConfig)
	admin.PUT("/site/about", handler.UpdateAboutConfig)
	admin.PUT("/site/about/:id/activate", handler.ActivateAboutConfig)

	admin.POST("/site/about/journey", handler.CreateJourneyItem)
	admin.PUT("/site/about/journey/:id", handler.UpdateJourneyItem)
	admin.DELETE("/site/about/journey/:id", handler.DeleteJourneyItem)
	admin.POST("/site/about/education", handler.CreateEducation)
	admin.PUT("/site/about/education/:id", handler.UpdateEducation)
	admin.DELETE("/site/about/education/:id", handler.DeleteEducation)
	admin.POST("/site/about/achievements", handler.CreateAchievement)
	admin.PUT("/site/about/achievements/:id", handler.UpdateAchievement)
	admin.DELETE("/site/about/achievements/:id", handler.DeleteAchievement)
	admin.POST("/site/about/speaking", handler.CreateSpeaking)
	admin.PUT("/site/about/speaking/:id", handler.UpdateSpeaking)
	admin.DELETE("/site/about/speaking/:id", handler.DeleteSpeaking)

	admin.POST("/site/social-media", handler.CreateSocialMediaLink)
	admin.PUT("/site/social-media/:id", handler.UpdateSocialMediaLink)
	admin.DELETE("/site/social-media/:id", handler.DeleteSocialMediaLink)

	admin.GET("/contact", handler.ListContactMessages)
	admin.PUT("/contact/:id/read", handler.MarkContactMessageRead)
	admin.GET("/newsletter", handler.ListNewsletterSubscriptions)

	admin.GET("/analytics/stats", handler.GetAnalyticsStats)
	admin.POST("/upload", handler.UploadMedia)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server error", zap.Error(err))
	}
}
