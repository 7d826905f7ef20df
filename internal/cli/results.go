package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/padelstats/fipscrape/internal/calendar"
	"github.com/padelstats/fipscrape/internal/event"
	"github.com/padelstats/fipscrape/internal/export"
	"github.com/padelstats/fipscrape/internal/results"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagOutTournaments string
	flagOutResults     string
	flagMaxEvents      int
	flagSkipResults    bool
)

func newResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Scrape the tournament calendar and per-day match results",
		RunE:  runResults,
	}

	cmd.Flags().StringVar(&flagOutTournaments, "out-tournaments", "tournaments.csv",
		"Tournament listing output file ('-' for stdout)")
	cmd.Flags().StringVar(&flagOutResults, "out-results", "results.csv",
		"Match results output file ('-' for stdout)")
	cmd.Flags().IntVar(&flagMaxEvents, "max-events", 0,
		"Only collect results for the first N events (0 = all)")
	cmd.Flags().BoolVar(&flagSkipResults, "skip-results", false,
		"Only scrape the calendar, skip the results widget")

	return cmd
}

func runResults(cmd *cobra.Command, args []string) error {
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

	if err := writeSink(flagOutTournaments, func(w io.Writer) error {
		if format == FormatJSON {
			return writeJSON(w, events)
		}
		return export.WriteTournaments(w, events)
	}); err != nil {
		return err
	}
	rt.log.WithFields(logrus.Fields{
		"events": len(events),
		"file":   flagOutTournaments,
	}).Info("wrote tournament listing")

	var records []event.Record
	if !flagSkipResults {
		targets := events
		if flagMaxEvents > 0 && len(targets) > flagMaxEvents {
			targets = targets[:flagMaxEvents]
		}

		scraper := results.NewScraper(rt.fetch, rt.cfg.WidgetURL, rt.cfg.Delay, rt.log)
		for _, ev := range targets {
			recs, err := scraper.CollectEvent(ev)
			if err != nil {
				rt.log.WithField("event", ev.Name).WithError(err).Warn("skipping event")
				continue
			}
			rt.log.WithFields(logrus.Fields{
				"event":   ev.Name,
				"matches": len(recs),
			}).Info("collected results")
			records = append(records, recs...)
		}

		if err := writeSink(flagOutResults, func(w io.Writer) error {
			if format == FormatJSON {
				return writeJSON(w, records)
			}
			return export.WriteResults(w, records)
		}); err != nil {
			return err
		}
		rt.log.WithFields(logrus.Fields{
			"matches": len(records),
			"file":    flagOutResults,
		}).Info("wrote match results")
	}

	if flagDB != "" {
		store, err := export.OpenStore(flagDB)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SaveTournaments(events); err != nil {
			return err
		}
		if err := store.SaveResults(records); err != nil {
			return err
		}
		rt.log.WithField("db", flagDB).Info("persisted to database")
	}

	return nil
}

// loadCalendar scrapes each requested year's calendar page. A year that
// fails to fetch or parse is logged and skipped, it never aborts the run.
func (rt *runtime) loadCalendar(years []int) []*event.Event {
	var all []*event.Event
	for _, year := range years {
		url := fmt.Sprintf(rt.cfg.CalendarURL, year)
		page, err := rt.fetch.Get(url)
		if err != nil {
			rt.log.WithField("year", year).WithError(err).Warn("skipping calendar year")
			continue
		}

		events, strategy, err := calendar.ParseYear(strings.NewReader(page), year)
		if err != nil {
			rt.log.WithField("year", year).WithError(err).Warn("skipping calendar year")
			continue
		}

		rt.log.WithFields(logrus.Fields{
			"year":     year,
			"events":   len(events),
			"strategy": strategy,
		}).Info("parsed calendar")
		all = append(all, events...)
	}
	return all
}
