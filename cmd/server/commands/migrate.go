package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"farmapi/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the farmer and crop tables, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer closeDB(db, log)

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info().Str("driver", cfg.DBDriver).Msg("schema up to date")
			return nil
		},
	}
}
