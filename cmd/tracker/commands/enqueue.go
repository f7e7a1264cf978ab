package commands

import (
	"fmt"

	"github.com/MichalMitros/price-tracker/internal/platform/rabbitmq"
	"github.com/MichalMitros/price-tracker/pkg/v1/commander"
	"github.com/spf13/cobra"
)

var enqueueAll *bool

func init() {
	enqueueAll = enqueueCmd.Flags().Bool("all", false, "Enqueue all retailers from catalog.")
	rootCmd.AddCommand(enqueueCmd)
}

var enqueueCmd = &cobra.Command{
	Use:   "enqueue [--all] [retailer...]",
	Short: "Publishes scrape commands for workers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		selected, err := selectSites(catalog, args, *enqueueAll)
		if err != nil {
			return err
		}

		conn, err := openRabbitMQ()
		if err != nil {
			return err
		}
		defer conn.Close()

		rmq, err := rabbitmq.NewRabbitMQ(conn, cfg.RabbitMQ.Exchange)
		if err != nil {
			return err
		}
		defer rmq.Close()

		if err := rmq.DeclareQueue(cfg.RabbitMQ.Queue, cfg.RabbitMQ.RoutingKey); err != nil {
			return err
		}

		cmndr := commander.NewScrapeCommander(commander.NewRabbitMQSender(rmq, cfg.RabbitMQ.RoutingKey))
		for _, site := range selected {
			if err := cmndr.SendScrapeCommand(cmd.Context(), site.Name); err != nil {
				return fmt.Errorf("can't enqueue %s: %w", site.Name, err)
			}
			logger.Info().Str("retailer", site.Name).Msg("scrape command published")
		}

		return nil
	},
}
