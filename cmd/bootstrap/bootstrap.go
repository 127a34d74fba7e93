package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-admin/config"
	deliveryHttp "clinic-admin/internal/delivery/http"
	"clinic-admin/internal/delivery/http/handler"
	"clinic-admin/internal/delivery/http/middleware"
	domainRepo "clinic-admin/internal/domain/repository"
	"clinic-admin/internal/infrastructure/cache"
	"clinic-admin/internal/infrastructure/database"
	"clinic-admin/internal/listing"
	"clinic-admin/internal/repository"
	"clinic-admin/internal/repository/mongostore"
	"clinic-admin/internal/service"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/jwt"
	"clinic-admin/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	Store       *domainRepo.Store
	Snapshots   *service.SnapshotService
	Server      *http.Server

	log *logrus.Logger
}

// Open loads the configuration and connects the record store. It is enough
// for the offline commands; New builds the full server on top of it.
func Open(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	app := &App{Config: cfg, log: setupLogger(cfg.App.LogLevel)}
	app.log.Info("Configuration loaded successfully")

	if err := app.openStore(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context) (*App, error) {
	app, err := Open(ctx)
	if err != nil {
		return nil, err
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(ctx, app.Config.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Load snapshots before accepting traffic
	app.Snapshots = service.NewSnapshotService(app.Store, redisClient, app.Config.Snapshot.ResyncSpec, app.log)
	if err := app.Snapshots.Start(ctx); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}

	server, err := app.initializeServer()
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

func (app *App) openStore(ctx context.Context) error {
	switch app.Config.Storage.Driver {
	case config.StorageDriverMongo:
		client, db, err := database.NewMongoConnection(ctx, app.Config.Mongo)
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		app.MongoClient = client
		app.MongoDB = db
		app.Store = mongostore.NewStore(db)

	default:
		db, err := database.NewPostgresConnection(app.Config.DB, app.Config.App.Env)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		if app.Config.DB.AutoMigrate {
			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			app.log.Info("Database schema auto-migrated")
		}
		app.Store = repository.NewGormStore(db)
	}

	app.log.WithField("driver", app.Config.Storage.Driver).Info("Record store ready")
	return nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() (*http.Server, error) {
	cfg := app.Config
	log := app.log
	store := app.Store
	loc := cfg.App.Location

	catalog, err := listing.NewCatalog(cfg.Views.ResetPageOnFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to build view catalog: %w", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize services and repositories
	auditService := service.NewAuditService(log, store.AuditLogs)
	sessionRepo := repository.NewViewSessionRepository(app.RedisClient, cfg.Session.TTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, store.Users, store.Credentials, auditService, jwtService, app.RedisClient)
	employeeUsecase := usecase.NewEmployeeUsecase(log, store.Employees, app.Snapshots, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, store.Doctors, app.Snapshots, auditService)
	consultationUsecase := usecase.NewConsultationUsecase(log, store.Consultations, app.Snapshots, auditService, loc)
	userUsecase := usecase.NewUserUsecase(log, store.Users, store.Credentials, app.Snapshots, auditService, authUsecase)
	viewUsecase := usecase.NewViewUsecase(log, catalog, sessionRepo, app.Snapshots, loc)
	reportUsecase := usecase.NewReportUsecase(log, store.Employees, app.Snapshots, auditService, cfg.Billing, loc)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, store.AuditLogs)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, app.RedisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		handler.NewAuthHandler(authUsecase, customValidator, jwtService),
		handler.NewEmployeeHandler(employeeUsecase, reportUsecase, customValidator),
		handler.NewDoctorHandler(doctorUsecase, customValidator),
		handler.NewConsultationHandler(consultationUsecase, customValidator),
		handler.NewUserHandler(userUsecase, customValidator),
		handler.NewViewHandler(viewUsecase, customValidator),
		handler.NewReportHandler(reportUsecase, customValidator),
		handler.NewAuditLogHandler(auditLogUsecase),
		authMiddleware,
		corsMiddleware,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// offlineSnapshots starts a hub without change notifications for the
// commands that run outside the server.
func (app *App) offlineSnapshots(ctx context.Context) (*service.SnapshotService, error) {
	if app.Snapshots == nil {
		app.Snapshots = service.NewSnapshotService(app.Store, nil, "", app.log)
		if err := app.Snapshots.Start(ctx); err != nil {
			return nil, fmt.Errorf("failed to load snapshots: %w", err)
		}
	}
	return app.Snapshots, nil
}

// Migrate applies the schema of the configured store. steps > 0 rolls back
// that many relational migrations instead.
func (app *App) Migrate(ctx context.Context, steps int) error {
	if app.Config.Storage.Driver == config.StorageDriverMongo {
		if steps > 0 {
			return fmt.Errorf("rolling back is not supported by the %s store", config.StorageDriverMongo)
		}
		return mongostore.EnsureIndexes(ctx, app.MongoDB)
	}

	if steps > 0 {
		return database.MigrateDown(app.Config.DB, steps)
	}
	return database.MigrateUp(app.Config.DB)
}

// SeedAdmin creates the configured administrator when no admin exists yet.
func (app *App) SeedAdmin(ctx context.Context) (bool, error) {
	snapshots, err := app.offlineSnapshots(ctx)
	if err != nil {
		return false, err
	}

	auditService := service.NewAuditService(app.log, app.Store.AuditLogs)
	users := usecase.NewUserUsecase(app.log, app.Store.Users, app.Store.Credentials, snapshots, auditService, nil)
	return users.SeedAdmin(ctx, app.Config.Admin)
}

// Reports builds the report usecase over an offline hub.
func (app *App) Reports(ctx context.Context) (usecase.ReportUsecase, error) {
	snapshots, err := app.offlineSnapshots(ctx)
	if err != nil {
		return nil, err
	}

	auditService := service.NewAuditService(app.log, app.Store.AuditLogs)
	return usecase.NewReportUsecase(app.log, app.Store.Employees, snapshots, auditService, app.Config.Billing, app.Config.App.Location), nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.log.Infof("Server starting on port %s", app.Config.App.Port)
		app.log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.log.Fatalf("Failed to start server: %v", err)
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

	app.log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.log.Info("Server shutdown complete")
}

// Close stops the snapshot hub and closes every connection.
func (app *App) Close() {
	if app.Snapshots != nil {
		app.Snapshots.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.MongoClient.Disconnect(ctx)
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
