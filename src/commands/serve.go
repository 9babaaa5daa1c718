package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AdventureLog/worldtravel-backend/src/routes"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the worldtravel REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			conn, err := openDatabase()
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              cfg.ServerHost,
				Handler:           routes.NewRouter(cfg, conn),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server is running", "addr", cfg.ServerHost)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return wrap(err, "error starting server on %s", cfg.ServerHost)
			case <-cmd.Context().Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
