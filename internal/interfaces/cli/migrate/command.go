package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"deskd/internal/infrastructure/config"
	"deskd/internal/infrastructure/database"
	"deskd/internal/infrastructure/migration"
	"deskd/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll back, and inspect status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv() (*migration.GooseStrategy, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}

	strategy := migration.NewGooseStrategy(scriptsPath, cfg.Database.Driver)
	gooseStrategy, ok := strategy.(*migration.GooseStrategy)
	if !ok {
		return nil, fmt.Errorf("unexpected migration strategy type")
	}

	return gooseStrategy, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations applied successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	logger.Info("migrations rolled back", "steps", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	return strategy.Status(database.Get())
}
