package commands

import (
	"github.com/AdventureLog/worldtravel-backend/src/seed"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Imports the world travel data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog()
			if err != nil {
				return wrap(err, "load catalog")
			}
			conn, err := openDatabase()
			if err != nil {
				return err
			}

			seeder := seed.New(conn, c,
				seed.NewFlagDownloader(cfg, logger),
				seed.NewGeometryAttacher(cfg, logger),
				logger,
			)
			_, err = seeder.Run(cmd.Context(), force)
			return wrap(err, "Error importing data")
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Force import even if data already exists")
	return cmd
}
