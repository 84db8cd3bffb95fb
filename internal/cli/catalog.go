package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tendly/tenderchat/pkg/models"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [label]",
	Short: "List catalog shortcuts, or run one by label",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			var response models.CatalogResponse
			if err := getJSON("/catalog", &response); err != nil {
				return err
			}

			rows := make([][]string, 0, len(response.Entries))
			for _, entry := range response.Entries {
				rows = append(rows, []string{entry.Label, entry.Category, entry.Kind})
			}
			renderTable([]string{"label", "category", "kind"}, rows)
			return nil
		}

		var response models.AskResponse
		if err := postJSON("/catalog/"+args[0], nil, &response); err != nil {
			return err
		}

		if !response.Success {
			renderError(response.Error)
			return nil
		}

		fmt.Printf("SQL: %s\n\n", response.SQL)
		renderTable(response.Columns, response.Rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
