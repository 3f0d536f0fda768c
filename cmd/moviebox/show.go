package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kerbaras/moviebox/pkg/app/components"
	"github.com/kerbaras/moviebox/pkg/data"
	"github.com/kerbaras/moviebox/pkg/services"
	"github.com/spf13/cobra"
)

var showRemote bool

var errNotFound = errors.New("movie not found")

var showCmd = &cobra.Command{
	Use:   "show <location | category id>",
	Short: "Show the details of a movie",
	Long: `Resolve a movie the way the home view does and print its details.

The target is either a location such as /movies/popular/550 or a category and
an id. Only the named category is searched. With --remote the id is looked up
directly on TMDB instead.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		target, err := parseShowArgs(args)
		cobra.CheckErr(err)

		cfg := setup(false)
		source := newSource(cfg)

		var movie data.Movie
		if showRemote {
			id, err := strconv.Atoi(target.ID)
			if err != nil {
				cobra.CheckErr(fmt.Errorf("invalid movie id %q", target.ID))
			}
			movie, err = source.Movie(cmd.Context(), id)
			cobra.CheckErr(err)
		} else {
			registry := services.NewSourceRegistry(source)
			registry.LoadAll(cmd.Context())

			if res, ok := registry.Result(target.Category); ok && res.Status == data.StatusFailed {
				cobra.CheckErr(fmt.Errorf("%s unavailable: %w", target.Category.Label(), res.Err))
			}
			var ok bool
			movie, ok = services.Resolve(target, registry.Results())
			if !ok {
				cobra.CheckErr(fmt.Errorf("%w: /movies/%s/%s", errNotFound, target.Category, target.ID))
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), components.Modal{Movie: movie}.View())
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRemote, "remote", false, "look the id up on TMDB instead of in the category lists")
}

// parseShowArgs accepts either a detail location or a category and an id.
func parseShowArgs(args []string) (*services.Target, error) {
	if len(args) == 1 {
		target := services.ParseTarget(args[0])
		if target == nil {
			return nil, fmt.Errorf("invalid location %q, expected /movies/<category>/<id>", args[0])
		}
		return target, nil
	}
	category := strings.TrimSpace(args[0])
	id := strings.TrimSpace(args[1])
	if category == "" || id == "" {
		return nil, fmt.Errorf("category and id must not be empty")
	}
	return &services.Target{Category: data.CategoryKey(category), ID: id}, nil
}
