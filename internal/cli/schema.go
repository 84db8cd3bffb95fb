package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tendly/tenderchat/pkg/models"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List accessible tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var response models.TablesResponse
		if err := getJSON("/tables", &response); err != nil {
			return err
		}

		rows := make([][]string, 0, len(response.Tables))
		for _, table := range response.Tables {
			rows = append(rows, []string{table})
		}
		renderTable([]string{"table"}, rows)
		return nil
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the introspected database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var response models.SchemaResponse
		if err := getJSON("/schema", &response); err != nil {
			return err
		}

		fmt.Println(response.Schema)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(schemaCmd)
}
