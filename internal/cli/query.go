package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tendly/tenderchat/pkg/models"
)

var queryCmd = &cobra.Command{
	Use:   "query [sql]",
	Short: "Execute a SQL statement verbatim (trusted users)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		statement := strings.Join(args, " ")

		var response models.QueryResponse
		if err := postJSON("/query", models.QueryRequest{Query: statement}, &response); err != nil {
			return err
		}

		if response.Error != "" {
			renderError(response.Error)
			return nil
		}

		if len(response.Result) == 0 {
			renderTable(nil, nil)
			return nil
		}
		renderTable(response.Result[0], response.Result[1:])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
