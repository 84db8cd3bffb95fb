package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tendly/tenderchat/pkg/models"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the tender database a question in natural language",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		var response models.AskResponse
		if err := postJSON("/ask", models.AskRequest{Question: question}, &response); err != nil {
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
	rootCmd.AddCommand(askCmd)
}
