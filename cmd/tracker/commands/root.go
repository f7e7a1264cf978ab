package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/MichalMitros/price-tracker/cmd/tracker/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "tracker",
	Short:         "tracker scrapes retailer sites and tracks product price history.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.Parse(); err != nil {
			return err
		}

		level, err := cfg.Level()
		if err != nil {
			return err
		}
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)

		return nil
	},
}

// ExecuteContext runs command selected by arguments.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
