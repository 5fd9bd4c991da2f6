package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	"github.com/courierdesk/merchant_admin_app/internal/core/services"
	"github.com/courierdesk/merchant_admin_app/internal/handlers"
	"github.com/courierdesk/merchant_admin_app/internal/middleware"
	"github.com/courierdesk/merchant_admin_app/internal/platform/config"
	"github.com/courierdesk/merchant_admin_app/internal/repositories/database/pgsql"
	"github.com/courierdesk/merchant_admin_app/internal/repositories/memory"
	"github.com/courierdesk/merchant_admin_app/internal/utils"
	"github.com/courierdesk/merchant_admin_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Merchant Admin API
// @version 1.0
// @description Admin dashboard backend for merchant tip reconciliation.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	repos := buildRepositories(ctx, cfg, logger)

	serviceContainer := services.NewServiceContainer(&repos, cfg)

	if err := serviceContainer.Auth.EnsureSeedAdmin(ctx, cfg.AdminSeedUsername, cfg.AdminSeedPassword); err != nil {
		logger.Error("Failed to ensure seed admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Prime the derived balances so the first request is served from a warm
	// snapshot.
	if err := serviceContainer.Balance.Recompute(ctx); err != nil {
		logger.Error("Initial reconciliation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories connects to PostgreSQL and runs migrations when a database
// URL is configured, and falls back to the in-memory store otherwise.
func buildRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) portsrepo.RepositoryProvider {
	if cfg.DatabaseURL == "" {
		logger.Warn("No database URL configured, using the in-memory store. Data will not survive a restart.")
		return memory.NewRepositoryProvider(memory.NewStore())
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database connection pool established.")

	runMigrations(cfg.DatabaseURL, logger)

	return pgsql.NewRepositoryProvider(dbPool)
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		os.Exit(1)
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		os.Exit(1)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
}
