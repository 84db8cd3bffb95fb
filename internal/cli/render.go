package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

func renderTable(columns []string, rows [][]string) {
	if len(columns) == 0 {
		color.Yellow("No rows returned")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(columns)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(true)

	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

func renderError(message string) {
	color.Red("Error: %s", message)
}
