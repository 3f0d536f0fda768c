package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/moviebox/pkg/app/styles"
	"github.com/kerbaras/moviebox/pkg/data"
	"github.com/kerbaras/moviebox/pkg/sources"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List movie categories",
	Long:  "Display the categories shown on the home view, in display order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), categoriesTable())
	},
}

func categoriesTable() string {
	columns := []table.Column{
		{Title: "Key", Width: 14},
		{Title: "Title", Width: 14},
		{Title: "Endpoint", Width: 22},
	}

	rows := []table.Row{}
	for _, key := range data.Categories {
		path, _ := sources.ListPath(key)
		rows = append(rows, table.Row{key.String(), key.Label(), path})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		// header plus its border line
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.BlackLighter).
		BorderBottom(true).
		Bold(true)
	// nothing is focused, so the cursor row must look like the others
	s.Selected = s.Cell
	t.SetStyles(s)

	return t.View()
}
