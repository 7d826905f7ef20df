package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/padelstats/fipscrape/internal/config"
	"github.com/padelstats/fipscrape/internal/fetch"
	"github.com/padelstats/fipscrape/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagYears   []int
	flagFormat  string
	flagDB      string
	flagDelay   time.Duration
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fipscrape",
		Short: "Scrape padelfip.com tournaments, results, venues and rankings",
		Long: `A CLI tool that scrapes padelfip.com: the yearly tournament calendar,
per-day match results from the live-score widget, venue details, the
world ranking and player profiles. Output goes to CSV or JSON files
and optionally into a sqlite database.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().IntSliceVar(&flagYears, "years", []int{time.Now().Year()},
		"Calendar years to scrape (e.g. 2024,2025)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "csv", "Output format: csv or json")
	cmd.PersistentFlags().StringVar(&flagDB, "db", "", "Also persist into this sqlite database")
	cmd.PersistentFlags().DurationVar(&flagDelay, "delay", -1,
		"Politeness pause between page fetches (overrides config)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newResultsCmd())
	cmd.AddCommand(newVenuesCmd())
	cmd.AddCommand(newRankingsCmd())
	cmd.AddCommand(newPlayersCmd())

	return cmd
}

// runtime bundles what every subcommand needs: resolved config, a
// run-stamped logger and the shared HTTP client.
type runtime struct {
	cfg   *config.Config
	log   *logrus.Entry
	fetch *fetch.Client
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagDelay >= 0 {
		cfg.Delay = flagDelay
	}

	level := cfg.LogLevel
	if flagVerbose {
		level = "debug"
	}
	log := logger.WithRun(logger.New(level, cfg.LogFormat, os.Stderr))

	client := fetch.New(fetch.Options{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Attempts:  cfg.Retries,
	}, log)

	return &runtime{cfg: cfg, log: log, fetch: client}, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
