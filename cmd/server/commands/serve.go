package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"farmapi/app"
	"farmapi/database"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer closeDB(db, log)

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			e := app.Build(cfg, db, log)
			errCh := make(chan error, 1)
			go func() {
				log.Info().
					Str("addr", cfg.Addr()).
					Str("driver", cfg.DBDriver).
					Float64("drone_rate_per_acre", cfg.DroneRatePerAcre).
					Msg("listening")
				errCh <- e.Start(cfg.Addr())
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve: %w", err)
				}
				return nil
			case <-cmd.Context().Done():
			}

			log.Info().Msg("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := e.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}
}
