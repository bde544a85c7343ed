package bootstrap

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ankitr/coachdesk/docs" // Generated swagger docs
	appControllers "github.com/ankitr/coachdesk/internal/app/controllers"
	appMigrations "github.com/ankitr/coachdesk/internal/app/migrations"
	appRepos "github.com/ankitr/coachdesk/internal/app/repositories"
	appRoutes "github.com/ankitr/coachdesk/internal/app/routes"
	appServices "github.com/ankitr/coachdesk/internal/app/services"
	"github.com/ankitr/coachdesk/internal/config"
	"github.com/ankitr/coachdesk/internal/db"
	appMiddleware "github.com/ankitr/coachdesk/internal/middleware"
	pkgAuth "github.com/ankitr/coachdesk/internal/pkg/auth"
	"github.com/ankitr/coachdesk/internal/pkg/cleanup"
	"github.com/ankitr/coachdesk/internal/pkg/email"
	"github.com/ankitr/coachdesk/internal/pkg/filestorage"
	"github.com/ankitr/coachdesk/internal/pkg/helpers"
	"github.com/ankitr/coachdesk/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appControllers.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Notifier       email.EnquiryNotifier
	Sweeper        *cleanup.Sweeper
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// File storage serves uploads under a single public base URL so
	// stored rows only ever hold relative paths.
	fileStorageBaseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	if !cfg.SMTPEnabled() {
		lgr.Warn().Msg("SMTP not configured, enquiry notifications will only be logged")
	}
	deps.Notifier = email.NewSMTPNotifier(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		AdminTo:   cfg.SMTP.AdminTo,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	deps.Services = appServices.NewServices(deps.Repos, deps.FileStorage, deps.Notifier, deps.JWTService)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.Controllers = appControllers.NewControllers(deps.Services)

	if cfg.Cleanup.Enabled {
		deps.Sweeper = cleanup.NewSweeper(database.Pool, deps.FileStorage)
		if err := deps.Sweeper.Start(cfg.Cleanup.Schedule); err != nil {
			lgr.Error().Err(err).Str("schedule", cfg.Cleanup.Schedule).Msg("Failed to schedule orphan file sweeper")
			return nil, fmt.Errorf("failed to schedule orphan file sweeper: %w", err)
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// CORS for the admin frontend origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORS.AllowedOrigin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
