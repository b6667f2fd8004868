package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"farmapi/config"
	"farmapi/database"
	"farmapi/pkg/logging"
)

var configPath string

// Execute runs the root command. With no subcommand it serves.
func Execute(ctx context.Context, version string) error {
	return newRootCommand(version).ExecuteContext(ctx)
}

func newRootCommand(version string) *cobra.Command {
	serve := newServeCommand()
	root := &cobra.Command{
		Use:           "farmapi",
		Short:         "Farmer and crop records with drone usage billing",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (yaml, json or toml); env vars override it")

	root.AddCommand(serve)
	root.AddCommand(newMigrateCommand())
	return root
}

// bootstrap loads configuration, builds the logger and opens the database.
func bootstrap() (config.AppConfig, zerolog.Logger, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, zerolog.Nop(), nil, err
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	db, err := database.Open(cfg.DBDriver, cfg.DBDSN, logging.Component(log, "gorm"))
	if err != nil {
		return cfg, log, nil, err
	}
	return cfg, log, db, nil
}

func closeDB(db *gorm.DB, log zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("close database")
	}
}
