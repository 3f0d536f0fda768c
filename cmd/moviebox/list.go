package cmd

import (
	"fmt"

	"github.com/kerbaras/moviebox/pkg/data"
	"github.com/kerbaras/moviebox/pkg/services"
	"github.com/spf13/cobra"
)

var listPage int

var listCmd = &cobra.Command{
	Use:   "list <category>",
	Short: "Print one page of a category",
	Long:  "Fetch a category from TMDB and print a page of five movies, the same slice the home view shows",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := data.CategoryKey(args[0])
		if !key.Valid() {
			cobra.CheckErr(fmt.Errorf("unknown category %q, see 'moviebox categories'", args[0]))
		}
		if listPage < 1 {
			cobra.CheckErr(fmt.Errorf("page must be 1 or greater"))
		}

		cfg := setup(false)
		movies, err := newSource(cfg).Movies(cmd.Context(), key)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("list failed: %w", err))
		}

		out := cmd.OutOrStdout()
		total := services.TotalPages(len(movies))
		page := services.PageSlice(movies, listPage-1)
		if len(page) == 0 {
			fmt.Fprintf(out, "No movies on page %d of %s (%d pages).\n", listPage, key.Label(), total)
			return
		}

		fmt.Fprintf(out, "\n%s, page %d of %d\n\n", key.Label(), listPage, total)
		fmt.Fprintln(out, moviesTable(page, (listPage-1)*services.PageSize))
	},
}

func init() {
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page number, starting at 1")
}
