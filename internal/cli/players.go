package cli

import (
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/padelstats/fipscrape/internal/export"
	"github.com/padelstats/fipscrape/internal/ranking"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagPlayersURL string
	flagOutPlayers string
	flagMaxPlayers int
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Scrape player profiles linked from the ranking page",
		RunE:  runPlayers,
	}

	cmd.Flags().StringVar(&flagPlayersURL, "url", "",
		"Ranking page URL to collect profile links from")
	cmd.Flags().StringVar(&flagOutPlayers, "out", "players.csv",
		"Player profiles output file ('-' for stdout)")
	cmd.Flags().IntVar(&flagMaxPlayers, "max-players", 0,
		"Only visit the first N profiles (0 = all)")

	return cmd
}

func runPlayers(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}

	listURL := flagPlayersURL
	if listURL == "" {
		listURL = rt.cfg.RankingURL
	}

	page, err := rt.fetch.Get(listURL)
	if err != nil {
		return err
	}

	links, err := ranking.ParseLinks(strings.NewReader(page))
	if err != nil {
		return err
	}
	rt.log.WithFields(logrus.Fields{
		"links": len(links),
		"url":   listURL,
	}).Info("collected profile links")

	if flagMaxPlayers > 0 && len(links) > flagMaxPlayers {
		links = links[:flagMaxPlayers]
	}

	var profiles []*ranking.Profile
	for _, link := range links {
		profileURL := resolveURL(listURL, link.URL)

		page, err := rt.fetch.Get(profileURL)
		if err != nil {
			rt.log.WithField("player", link.Name).WithError(err).Warn("skipping profile")
			continue
		}

		p, err := ranking.ParseProfile(strings.NewReader(page), profileURL)
		if err != nil {
			rt.log.WithField("player", link.Name).WithError(err).Warn("skipping profile")
			continue
		}
		profiles = append(profiles, p)
		time.Sleep(rt.cfg.Delay)
	}

	if err := writeSink(flagOutPlayers, func(w io.Writer) error {
		if format == FormatJSON {
			return writeJSON(w, profiles)
		}
		return export.WriteProfiles(w, profiles)
	}); err != nil {
		return err
	}
	rt.log.WithFields(logrus.Fields{
		"profiles": len(profiles),
		"file":     flagOutPlayers,
	}).Info("wrote player profiles")

	if flagDB != "" {
		store, err := export.OpenStore(flagDB)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SaveProfiles(profiles); err != nil {
			return err
		}
		rt.log.WithField("db", flagDB).Info("persisted to database")
	}

	return nil
}

// resolveURL turns a possibly relative profile href into an absolute URL
// against the page it was scraped from.
func resolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}
