package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/padelstats/fipscrape/internal/export"
	"github.com/padelstats/fipscrape/internal/venue"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagOutVenues string
	flagMaxVenues int
)

func newVenuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venues",
		Short: "Extract venue and court details from tournament pages",
		RunE:  runVenues,
	}

	cmd.Flags().StringVar(&flagOutVenues, "out", "venues.csv",
		"Venue listing output file ('-' for stdout)")
	cmd.Flags().IntVar(&flagMaxVenues, "max-events", 0,
		"Only visit the first N events (0 = all)")

	return cmd
}

func runVenues(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}

	events := rt.loadCalendar(flagYears)
	if len(events) == 0 {
		return fmt.Errorf("no events found for years %v", flagYears)
	}
	if flagMaxVenues > 0 && len(events) > flagMaxVenues {
		events = events[:flagMaxVenues]
	}

	var venues []venue.Info
	for _, ev := range events {
		page, err := rt.fetch.Get(ev.URL)
		if err != nil {
			rt.log.WithField("event", ev.Name).WithError(err).Warn("skipping event page")
			continue
		}
		venues = append(venues, venue.Extract(strings.NewReader(page), ev))
		time.Sleep(rt.cfg.Delay)
	}

	if err := writeSink(flagOutVenues, func(w io.Writer) error {
		if format == FormatJSON {
			return writeJSON(w, venues)
		}
		return export.WriteVenues(w, venues)
	}); err != nil {
		return err
	}
	rt.log.WithFields(logrus.Fields{
		"venues": len(venues),
		"file":   flagOutVenues,
	}).Info("wrote venue listing")

	if flagDB != "" {
		store, err := export.OpenStore(flagDB)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SaveVenues(venues); err != nil {
			return err
		}
		rt.log.WithField("db", flagDB).Info("persisted to database")
	}

	return nil
}
