package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"deskd/internal/infrastructure/auth"
	"deskd/internal/infrastructure/cache"
	"deskd/internal/infrastructure/config"
	"deskd/internal/infrastructure/database"
	"deskd/internal/infrastructure/migration"
	"deskd/internal/infrastructure/permission"
	"deskd/internal/infrastructure/persistence/seeds"
	httpRouter "deskd/internal/interfaces/http"
	"deskd/internal/shared/biztime"
	"deskd/internal/shared/logger"
)

var (
	env       string
	seedsPath string
	rbacModel string
	skipSeeds bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the deskd HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&seedsPath, "seeds", "./configs/seeds.yaml", "Path to the seed data file")
	cmd.Flags().StringVar(&rbacModel, "rbac-model", "./configs/rbac_model.conf", "Path to the casbin model file")
	cmd.Flags().BoolVar(&skipSeeds, "skip-seeds", false, "Skip seeding default data on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, ginMode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(""); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	log := logger.NewLogger()

	migrationManager := migration.NewManager(ginMode, cfg.Database.Driver)
	if err := migrationManager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	enforcer, err := permission.NewEnforcer(database.Get(), rbacModel, log)
	if err != nil {
		logger.Fatal("failed to initialize permission enforcer", "error", err)
	}
	if err := permission.InitDefaultPolicies(enforcer, log); err != nil {
		logger.Fatal("failed to seed default policies", "error", err)
	}

	if !skipSeeds {
		hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
		if err := seeds.Run(database.Get(), seedsPath, hasher, log); err != nil {
			logger.Fatal("failed to seed data", "error", err)
		}
	}

	if cfg.Redis.Enabled {
		if err := cache.Init(&cfg.Redis); err != nil {
			logger.Fatal("failed to initialize redis", "error", err)
		}
		defer cache.Close()
	}

	router := httpRouter.NewRouter(database.Get(), cfg, cache.Get(), enforcer, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
