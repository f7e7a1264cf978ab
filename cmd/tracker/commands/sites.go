package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sitesCmd)
}

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Lists retailer sites from catalog.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Retailer", "URL", "Categories", "Max pages", "Render"})
		for _, site := range catalog.Sites() {
			t.AppendRow(table.Row{site.Name, site.URL, len(site.Categories), site.MaxPages, site.Render})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()

		return nil
	},
}
