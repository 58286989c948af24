package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hospital-management/config"
	deliveryHttp "go-hospital-management/internal/delivery/http"
	"go-hospital-management/internal/delivery/http/handler"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/delivery/web"
	"go-hospital-management/internal/infrastructure/cache"
	"go-hospital-management/internal/infrastructure/database"
	"go-hospital-management/internal/repository"
	"go-hospital-management/internal/service"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/validator"

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

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
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
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}
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
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	nurseRepo := repository.NewNurseRepository(db)
	bedRepo := repository.NewBedRepository()
	medicineRepo := repository.NewMedicineRepository()
	itemRepo := repository.NewCanteenItemRepository(db)
	orderRepo := repository.NewCanteenOrderRepository()
	billRepo := repository.NewBillRepository()
	statsRepo := repository.NewStatsRepository()

	// Initialize services
	flashService := service.NewFlashService(redisClient, log)

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo)
	nurseUsecase := usecase.NewNurseUsecase(log, nurseRepo)
	facilityUsecase := usecase.NewFacilityUsecase(db, log, bedRepo)
	pharmacyUsecase := usecase.NewPharmacyUsecase(db, log, medicineRepo, billRepo)
	canteenUsecase := usecase.NewCanteenUsecase(db, log, itemRepo, orderRepo)
	billingUsecase := usecase.NewBillingUsecase(db, log, billRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, statsRepo, billRepo, cfg.Dashboard.StockChartSize)
	adminUsecase := usecase.NewAdminUsecase(db, log)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	nurseHandler := handler.NewNurseHandler(nurseUsecase, customValidator)
	facilityHandler := handler.NewFacilityHandler(facilityUsecase, customValidator)
	pharmacyHandler := handler.NewPharmacyHandler(pharmacyUsecase, customValidator)
	canteenHandler := handler.NewCanteenHandler(canteenUsecase, customValidator)
	billingHandler := handler.NewBillingHandler(billingUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	adminHandler := handler.NewAdminHandler(adminUsecase)

	webHandler, err := web.NewHandler(
		log,
		flashService,
		patientUsecase,
		doctorUsecase,
		nurseUsecase,
		facilityUsecase,
		pharmacyUsecase,
		canteenUsecase,
		billingUsecase,
		dashboardUsecase,
		adminUsecase,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize web handler: %w", err)
	}

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		patientHandler,
		doctorHandler,
		nurseHandler,
		facilityHandler,
		pharmacyHandler,
		canteenHandler,
		billingHandler,
		dashboardHandler,
		adminHandler,
		webHandler,
		loggingMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
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
