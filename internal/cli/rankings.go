package cli

import (
	"io"
	"strings"

	"github.com/padelstats/fipscrape/internal/export"
	"github.com/padelstats/fipscrape/internal/ranking"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagRankingURL string
	flagOutRanking string
)

func newRankingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "Scrape the world-ranking listing",
		RunE:  runRankings,
	}

	cmd.Flags().StringVar(&flagRankingURL, "url", "",
		"Ranking page URL (defaults to the configured male ranking)")
	cmd.Flags().StringVar(&flagOutRanking, "out", "ranking.csv",
		"Ranking output file ('-' for stdout)")

	return cmd
}

func runRankings(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}

	url := flagRankingURL
	if url == "" {
		url = rt.cfg.RankingURL
	}

	page, err := rt.fetch.Get(url)
	if err != nil {
		return err
	}

	players, err := ranking.ParseRanking(strings.NewReader(page))
	if err != nil {
		return err
	}
	rt.log.WithFields(logrus.Fields{
		"players": len(players),
		"url":     url,
	}).Info("parsed ranking")

	if err := writeSink(flagOutRanking, func(w io.Writer) error {
		if format == FormatJSON {
			return writeJSON(w, players)
		}
		return export.WriteRanking(w, players)
	}); err != nil {
		return err
	}

	if flagDB != "" {
		store, err := export.OpenStore(flagDB)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SaveRanking(players); err != nil {
			return err
		}
		rt.log.WithField("db", flagDB).Info("persisted to database")
	}

	return nil
}
