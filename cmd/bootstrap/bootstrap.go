package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-management/config"
	deliveryHttp "clinic-management/internal/delivery/http"
	"clinic-management/internal/delivery/http/handler"
	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/infrastructure/cache"
	"clinic-management/internal/infrastructure/database"
	"clinic-management/internal/repository"
	"clinic-management/internal/service"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/jwt"
	"clinic-management/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	sessionCleanupInterval = 10 * time.Minute
	shutdownTimeout        = 10 * time.Second
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := newLogger(cfg.App.Env)
	app.Log = log
	log.Info("Configuration loaded successfully")

	db, err := database.NewConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.WithField("driver", cfg.DB.Driver).Info("Database connected successfully")

	// Sessions live in Redis when one is configured, otherwise in process memory
	var sessionStore service.SessionStore
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.RedisClient = redisClient
		sessionStore = service.NewRedisSessionStore(redisClient, log)
	} else {
		log.Warn("REDIS_HOST not set, sessions are kept in memory")
		sessionStore = service.NewMemorySessionStore(sessionCleanupInterval)
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           NewHTTPHandler(cfg, db, sessionStore, log),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	return app, nil
}

// newLogger builds the JSON logrus logger shared by every layer
func newLogger(env string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	if env == "development" {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// NewHTTPHandler wires repositories, usecases and handlers into the routed
// HTTP handler.
func NewHTTPHandler(cfg *config.Config, db *gorm.DB, sessionStore service.SessionStore, log *logrus.Logger) http.Handler {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	clientRepo := repository.NewClientRepository()
	programRepo := repository.NewProgramRepository()
	enrollmentRepo := repository.NewEnrollmentRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	statisticsRepo := repository.NewStatisticsRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, auditService, jwtService, sessionStore)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, auditService, sessionStore)
	clientUsecase := usecase.NewClientUsecase(db, log, clientRepo, auditService)
	programUsecase := usecase.NewProgramUsecase(db, log, programRepo, auditService)
	enrollmentUsecase := usecase.NewEnrollmentUsecase(db, log, enrollmentRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, auditService)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, statisticsRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	handlers := deliveryHttp.Handlers{
		Auth:        handler.NewAuthHandler(authUsecase, customValidator),
		Client:      handler.NewClientHandler(clientUsecase, customValidator),
		Program:     handler.NewProgramHandler(programUsecase, customValidator),
		Enrollment:  handler.NewEnrollmentHandler(enrollmentUsecase, customValidator),
		Appointment: handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		User:        handler.NewUserHandler(userUsecase, customValidator),
		Dashboard:   handler.NewDashboardHandler(dashboardUsecase),
		AuditLog:    handler.NewAuditLogHandler(auditLogUsecase, customValidator),
	}

	router := deliveryHttp.NewRouter(
		handlers,
		middleware.NewAuthMiddleware(jwtService, sessionStore),
		middleware.NewCORSMiddleware(cfg.App.AllowedOrigin),
		middleware.NewLoggingMiddleware(log),
		middleware.NewRateLimitMiddleware(cfg.RateLimit),
	)

	return router.Setup()
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
