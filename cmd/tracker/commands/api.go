package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MichalMitros/price-tracker/internal/api"
	"github.com/MichalMitros/price-tracker/internal/platform/storage"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func init() {
	rootCmd.AddCommand(apiCmd)
}

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serves products read API.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		db, err := openPostgres()
		if err != nil {
			return err
		}
		defer db.Close()

		gin.SetMode(cfg.API.GinMode)
		srv := &http.Server{
			Addr:              cfg.API.Addr,
			Handler:           api.NewServer(storage.NewPostgres(db), api.WithLogger(&logger)).Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		serveErr := make(chan error, 1)
		go func() {
			logger.Info().Str("addr", srv.Addr).Msg("price tracker api up and running")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			return err
		case <-ctx.Done():
		}

		logger.Info().Msg("graceful shutdown start")

		// stop accepting new requests, allow running ones to finish
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		logger.Info().Msg("graceful shutdown successful")

		return nil
	},
}
