package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-ipd-engine/config"
	deliveryHttp "hospital-ipd-engine/internal/delivery/http"
	"hospital-ipd-engine/internal/delivery/http/handler"
	"hospital-ipd-engine/internal/delivery/http/middleware"
	"hospital-ipd-engine/internal/gateway/hms"
	"hospital-ipd-engine/internal/infrastructure/cache"
	"hospital-ipd-engine/internal/infrastructure/database"
	"hospital-ipd-engine/internal/repository"
	"hospital-ipd-engine/internal/service"
	"hospital-ipd-engine/internal/usecase"
	"hospital-ipd-engine/pkg/jwt"
	"hospital-ipd-engine/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database (local audit trail + admission read-model)
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Gateway to the remote hospital store; implements every port the
	// engine consumes
	hmsClient := hms.NewClient(cfg.HMS, log)

	// Initialize repositories
	auditLogRepo := repository.NewAuditLogRepository()
	snapshotRepo := repository.NewAdmissionSnapshotRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	capacityService := service.NewCapacityService(redisClient, hmsClient, log)
	inflightGuard := service.NewInflightGuard(redisClient, log)

	// Initialize usecases
	admissionUsecase := usecase.NewAdmissionUsecase(db, log, hmsClient, hmsClient, hmsClient,
		inflightGuard, capacityService, auditService, snapshotRepo)
	patientContextUsecase := usecase.NewPatientContextUsecase(log, hmsClient)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)
	admissionHistoryUsecase := usecase.NewAdmissionHistoryUsecase(db, log, snapshotRepo)

	// Initialize handlers
	admissionHandler := handler.NewAdmissionHandler(admissionUsecase, customValidator)
	patientContextHandler := handler.NewPatientContextHandler(patientContextUsecase)
	dashboardHandler := handler.NewDashboardHandler(capacityService, auditLogUsecase, admissionHistoryUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(admissionHandler, patientContextHandler, dashboardHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
