package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/moviebox/pkg/app/styles"
	"github.com/kerbaras/moviebox/pkg/data"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for movies",
	Long:  "Search TMDB for movies and display results in a table",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		cfg := setup(false)

		results, err := newSource(cfg).Search(cmd.Context(), query)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("search failed: %w", err))
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found.")
			return
		}
		fmt.Fprintln(out, moviesTable(results, 0))
	},
}

// moviesTable renders movies numbered from offset+1.
func moviesTable(movies []data.Movie, offset int) *table.Table {
	var (
		headerStyle = lipgloss.NewStyle().Foreground(styles.Red).Bold(true).Align(lipgloss.Center)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers("#", "ID", "Title", "Year", "Rating")

	for i, movie := range movies {
		rating := ""
		if movie.VoteAverage > 0 {
			rating = fmt.Sprintf("%.1f", movie.VoteAverage)
		}
		t.Row(
			strconv.Itoa(offset+i+1),
			strconv.Itoa(movie.ID),
			truncateString(movie.DisplayTitle(), 50),
			movie.Year(),
			rating,
		)
	}

	return t
}

func truncateString(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
