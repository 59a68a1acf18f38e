package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sjperalta/scolarite-api/docs" // Swagger docs
	"github.com/sjperalta/scolarite-api/internal/config"
	"github.com/sjperalta/scolarite-api/internal/database"
	"github.com/sjperalta/scolarite-api/internal/handlers"
	"github.com/sjperalta/scolarite-api/internal/middleware"
	"github.com/sjperalta/scolarite-api/internal/repository"
	"github.com/sjperalta/scolarite-api/internal/services"
	"github.com/sjperalta/scolarite-api/internal/storage"
	"github.com/sjperalta/scolarite-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Scolarité API
// @version 1.0
// @description REST API for school administration: students, classes, enrollments and tuition collection
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment, cfg.LogLevel)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	// Amounts are served as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}
	logger.Info("Database schema up to date")

	// Initialize storage
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage", "path", store.BasePath())

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize services
	svcs := services.NewServices(repos, store, cfg)

	// Initialize handlers
	h := handlers.NewHandlers(svcs)

	// Setup router
	router := setupRouter(h, store, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, store *storage.LocalStorage, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedExtensions([]string{".pdf", ".xlsx", ".png", ".jpg", ".jpeg"})))

	// Redirect root to swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded photos
	router.Static("/media", store.BasePath())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Index)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		annees := v1.Group("/annees")
		{
			annees.GET("", h.SchoolYear.Index)
			annees.POST("", h.SchoolYear.Create)
			annees.GET("/:id", h.SchoolYear.Show)
			annees.PUT("/:id", h.SchoolYear.Update)
			annees.DELETE("/:id", h.SchoolYear.Delete)
		}

		classes := v1.Group("/classes")
		{
			classes.GET("", h.Class.Index)
			classes.POST("", h.Class.Create)
			classes.GET("/:id", h.Class.Show)
			classes.PUT("/:id", h.Class.Update)
			classes.DELETE("/:id", h.Class.Delete)
		}
		v1.GET("/niveaux", h.Class.Levels)
		v1.GET("/options", h.Class.Tracks)

		// Static route first so "lookup" is not matched as :id
		frais := v1.Group("/frais")
		{
			frais.GET("", h.FeeSchedule.Index)
			frais.GET("/lookup", h.FeeSchedule.Lookup)
			frais.POST("", h.FeeSchedule.Create)
			frais.GET("/:id", h.FeeSchedule.Show)
			frais.PUT("/:id", h.FeeSchedule.Update)
			frais.DELETE("/:id", h.FeeSchedule.Delete)
		}

		eleves := v1.Group("/eleves")
		{
			eleves.GET("", h.Student.Index)
			eleves.POST("", h.Student.Create)
			eleves.GET("/:id", h.Student.Show)
			eleves.PUT("/:id", h.Student.Update)
			eleves.DELETE("/:id", h.Student.Delete)
			eleves.POST("/:id/photo", h.Student.UploadPhoto)
		}

		affectations := v1.Group("/affectations")
		{
			affectations.GET("", h.Enrollment.Index)
			affectations.POST("", h.Enrollment.Create)
			affectations.POST("/ensure", h.Enrollment.Ensure)
			affectations.GET("/:id", h.Enrollment.Show)
			affectations.PUT("/:id", h.Enrollment.Update)
			affectations.DELETE("/:id", h.Enrollment.Delete)
		}

		recouvrements := v1.Group("/recouvrements")
		{
			recouvrements.GET("", h.PaymentRecord.Index)
			recouvrements.POST("", h.PaymentRecord.Create)
			recouvrements.GET("/:id", h.PaymentRecord.Show)
			recouvrements.PUT("/:id", h.PaymentRecord.Update)
			recouvrements.DELETE("/:id", h.PaymentRecord.Delete)
			recouvrements.POST("/:id/recompute", h.PaymentRecord.Recompute)
			recouvrements.GET("/:id/recu", h.PaymentRecord.Receipt)
		}

		stats := v1.Group("/stats")
		{
			stats.GET("/recouvrements", h.Stats.Collection)
			stats.GET("/recouvrements/export", h.Stats.Export)
		}

		utilisateurs := v1.Group("/utilisateurs")
		{
			utilisateurs.GET("", h.User.Index)
			utilisateurs.POST("", h.User.Create)
			utilisateurs.GET("/:id", h.User.Show)
			utilisateurs.PUT("/:id", h.User.Update)
			utilisateurs.DELETE("/:id", h.User.Delete)
			utilisateurs.PUT("/:id/toggle_status", h.User.ToggleStatus)
			utilisateurs.POST("/:id/photo", h.User.UploadPhoto)
		}

		roles := v1.Group("/roles")
		{
			roles.GET("", h.Role.Index)
			roles.POST("", h.Role.Create)
			roles.GET("/:id", h.Role.Show)
			roles.PUT("/:id", h.Role.Update)
			roles.DELETE("/:id", h.Role.Delete)
		}

		permissions := v1.Group("/permissions")
		{
			permissions.GET("", h.Role.IndexPermissions)
			permissions.POST("", h.Role.CreatePermission)
			permissions.GET("/:id", h.Role.ShowPermission)
			permissions.PUT("/:id", h.Role.UpdatePermission)
			permissions.DELETE("/:id", h.Role.DeletePermission)
		}
	}

	return router
}
