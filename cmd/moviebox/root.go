package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kerbaras/moviebox/pkg/app"
	"github.com/kerbaras/moviebox/pkg/app/screens"
	"github.com/kerbaras/moviebox/pkg/config"
	"github.com/kerbaras/moviebox/pkg/logging"
	"github.com/kerbaras/moviebox/pkg/sources"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	openLocation string
)

var rootCmd = &cobra.Command{
	Use:   "moviebox",
	Short: "Browse movies from your terminal",
	Long:  "Discover now playing, top rated, upcoming and popular movies from TMDB in a TUI, or query them from the command line",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		cfg := setup(true)
		defer logging.Close()

		a := app.New(cfg, newSource(cfg), newImages(cfg)).Open(openLocation)
		if err := a.Run(cmd.Context()); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: $MOVIEBOX_CONFIG, ./moviebox.yaml or the user config dir)")
	rootCmd.Flags().StringVar(&openLocation, "open", "", "location to open at startup, e.g. /movies/popular/550")

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(searchCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and the logger. The TUI owns the terminal,
// so it only logs to the configured file.
func setup(tui bool) *config.Config {
	cfg, err := config.Load(configPath)
	cobra.CheckErr(err)

	lc := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}
	if !tui {
		lc.Output = os.Stderr
	}
	cobra.CheckErr(logging.Init(lc))
	return cfg
}

func newSource(cfg *config.Config) sources.Source {
	tmdb := sources.NewTMDB(cfg.TMDB.BaseURL, cfg.TMDB.APIKey, cfg.TMDB.Language, cfg.TMDB.Timeout)
	return sources.NewBreaker(tmdb, sources.BreakerSettings{
		MaxRequests:      cfg.Breaker.MaxRequests,
		Interval:         cfg.Breaker.Interval,
		Timeout:          cfg.Breaker.Timeout,
		FailureThreshold: cfg.Breaker.FailureThreshold,
	})
}

func newImages(cfg *config.Config) screens.ImageFetcher {
	if !cfg.UI.Backdrops {
		return nil
	}
	return sources.NewImages(cfg.TMDB.ImageBaseURL, cfg.TMDB.ImageSize, cfg.TMDB.Timeout)
}
