package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mispadamapur/school-api/internal/cache"
	"github.com/mispadamapur/school-api/internal/config"
	"github.com/mispadamapur/school-api/internal/database"
	"github.com/mispadamapur/school-api/internal/handler"
	"github.com/mispadamapur/school-api/internal/middleware"
	"github.com/mispadamapur/school-api/internal/repository"
	"github.com/mispadamapur/school-api/internal/service"
	"github.com/mispadamapur/school-api/internal/utils"
)

// main is the application entrypoint for the school website API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting school api")

	utils.InitJWT(cfg.JWTSecret)

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize content cache
	contentCache := cache.NewContentCache(redisClient, cfg.Cache.ContentTTL)

	// 4. Initialize repositories
	appRepo := repository.NewApplicationRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)
	msgRepo := repository.NewContactMessageRepository(db)
	eventRepo := repository.NewEventRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	// 5. Initialize services
	authSvc := service.NewAdminAuthService(adminRepo)
	appSvc := service.NewApplicationService(appRepo)
	contactSvc := service.NewContactService(msgRepo)
	contentSvc := service.NewContentService(eventRepo, newsRepo, galleryRepo, contentCache)
	statsSvc := service.NewStatsService(appRepo, msgRepo, eventRepo)

	// 5a. Seed admin account on first start
	if err := authSvc.EnsureSeedAdmin(cfg.Admin.FullName, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Error().Err(err).Msg("seed admin creation failed")
		fmt.Fprintf(os.Stderr, "seed admin creation failed: %v\n", err)
		os.Exit(1)
	}

	// 6. Initialize handlers
	loginLimiter := middleware.NewLoginRateLimiter()
	handlers := &Handlers{
		Health:      handler.NewHealthHandler(db, redisClient),
		Auth:        handler.NewAuthHandler(authSvc, loginLimiter),
		Application: handler.NewApplicationHandler(appSvc),
		Contact:     handler.NewContactHandler(contactSvc),
		Content:     handler.NewContentHandler(contentSvc),
		Stats:       handler.NewStatsHandler(statsSvc),
	}

	// 7. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedHosts))
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, middleware.NewJWTMiddleware())

	// 8. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 9. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 10. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	Application *handler.ApplicationHandler
	Contact     *handler.ContactHandler
	Content     *handler.ContentHandler
	Stats       *handler.StatsHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/api/health", handlers.Health.GetHealth)

	// Public site endpoints
	router.POST("/api/applications", handlers.Application.Submit)
	router.POST("/api/contact", handlers.Contact.Submit)
	router.GET("/api/events", handlers.Content.PublicEvents)
	router.GET("/api/news", handlers.Content.PublicNews)
	router.GET("/api/gallery", handlers.Content.PublicGallery)

	// Admin routes
	admin := router.Group("/api/admin")
	admin.POST("/login", handlers.Auth.Login)
	admin.POST("/signup", handlers.Auth.Signup)
	admin.Use(jwtMiddleware.Handle())
	{
		// Admissions
		admin.GET("/applications", handlers.Application.List)
		admin.GET("/applications/export", handlers.Application.Export)
		admin.PATCH("/applications/:id/status", handlers.Application.UpdateStatus)
		admin.DELETE("/applications/:id", handlers.Application.Delete)
		admin.DELETE("/applications", handlers.Application.DeleteAll)

		// Dashboard
		admin.GET("/stats", handlers.Stats.Dashboard)

		// Contact inbox
		admin.GET("/messages", handlers.Contact.List)
		admin.PATCH("/messages/:id/read", handlers.Contact.MarkRead)
		admin.DELETE("/messages/:id", handlers.Contact.Delete)

		// Content managers
		admin.GET("/events", handlers.Content.ListEvents)
		admin.POST("/events", handlers.Content.CreateEvent)
		admin.PUT("/events/:id", handlers.Content.UpdateEvent)
		admin.DELETE("/events/:id", handlers.Content.DeleteEvent)

		admin.GET("/news", handlers.Content.ListNews)
		admin.POST("/news", handlers.Content.CreateNews)
		admin.PUT("/news/:id", handlers.Content.UpdateNews)
		admin.DELETE("/news/:id", handlers.Content.DeleteNews)

		admin.GET("/gallery", handlers.Content.ListGallery)
		admin.POST("/gallery", handlers.Content.CreateGalleryItem)
		admin.PUT("/gallery/:id", handlers.Content.UpdateGalleryItem)
		admin.DELETE("/gallery/:id", handlers.Content.DeleteGalleryItem)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
