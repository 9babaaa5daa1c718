package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AdventureLog/worldtravel-backend/src/catalog"
	"github.com/AdventureLog/worldtravel-backend/src/config"
	"github.com/AdventureLog/worldtravel-backend/src/db"
	"github.com/AdventureLog/worldtravel-backend/src/logging"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "worldtravel",
	Short: "World travel data seeding and API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger = logging.Setup(cfg.LogLevel)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newSeedCmd(), newServeCmd(), newMigrateCmd())
}

// Execute runs the command line.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the worldtravel tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := openDatabase()
			return err
		},
	}
}

// openDatabase connects and migrates.
func openDatabase() (*gorm.DB, error) {
	conn, err := db.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

func loadCatalog() (*catalog.Catalog, error) {
	if cfg.CatalogFile != "" {
		return catalog.LoadFile(cfg.CatalogFile)
	}
	return catalog.Default()
}

func wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
