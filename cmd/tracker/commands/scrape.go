package commands

import (
	"errors"
	"fmt"

	"github.com/MichalMitros/price-tracker/internal/platform/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var scrapeAll *bool

func init() {
	scrapeAll = scrapeCmd.Flags().Bool("all", false, "Scrape all retailers from catalog.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--all] [retailer...]",
	Short: "Scrapes retailers once and prints run summaries.",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		selected, err := selectSites(catalog, args, *scrapeAll)
		if err != nil {
			return err
		}

		db, err := openPostgres()
		if err != nil {
			return err
		}
		defer db.Close()

		scr, closeBrowser := newScraper(db)
		defer closeBrowser()

		summary := newRunsTable()
		summary.SetOutputMirror(cmd.OutOrStdout())

		var errs []error
		for ix := range selected {
			if err := cmd.Context().Err(); err != nil {
				errs = append(errs, err)
				break
			}

			run, err := scr.Scrape(cmd.Context(), &selected[ix])
			if run != nil {
				appendRun(summary, selected[ix].Name, run)
			}
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", selected[ix].Name, err))
			}
		}

		summary.Render()

		return errors.Join(errs...)
	},
}

func newRunsTable() table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{
		"Retailer", "Run", "Success", "Created", "Updated", "Refreshed", "Skipped", "Failed", "Stale", "Status",
	})
	t.SetStyle(table.StyleRounded)

	return t
}

func appendRun(t table.Writer, retailer string, run *models.Run) {
	t.AppendRow(table.Row{
		retailer,
		run.ID,
		lo.FromPtr(run.IsSuccess),
		lo.FromPtr(run.CreatedProducts),
		lo.FromPtr(run.UpdatedProducts),
		lo.FromPtr(run.RefreshedProducts),
		lo.FromPtr(run.SkippedProducts),
		lo.FromPtr(run.FailedProducts),
		lo.FromPtr(run.StaleProducts),
		lo.FromPtrOr(run.StatusMessage, "-"),
	})
}
