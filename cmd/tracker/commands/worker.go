package commands

import (
	"github.com/MichalMitros/price-tracker/internal/handler"
	"github.com/MichalMitros/price-tracker/internal/platform/rabbitmq"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(workerCmd)
}

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consumes scrape commands from RabbitMQ and scrapes retailers.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		db, err := openPostgres()
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error().Err(err).Msg("can't close Postgres connection")
			}
		}()

		conn, err := openRabbitMQ()
		if err != nil {
			return err
		}
		defer func() {
			if err := conn.Close(); err != nil {
				logger.Error().Err(err).Msg("can't close RabbitMQ connection")
			}
		}()

		rmq, err := rabbitmq.NewRabbitMQ(conn, cfg.RabbitMQ.Exchange)
		if err != nil {
			return err
		}

		if err := rmq.DeclareQueue(cfg.RabbitMQ.Queue, cfg.RabbitMQ.RoutingKey); err != nil {
			return err
		}

		scr, closeBrowser := newScraper(db)
		defer closeBrowser()

		// start consuming and handling messages
		han := handler.NewHandler(rmq, scr, catalog, &logger)
		if err := han.Start(ctx, cfg.RabbitMQ.Queue); err != nil {
			return err
		}

		logger.Info().Msg("price tracker worker up and running")

		<-ctx.Done()
		logger.Info().Msg("graceful shutdown start")

		// wait for consumer to finish
		<-rmq.Done()

		logger.Info().Msg("graceful shutdown successful")

		return nil
	},
}
