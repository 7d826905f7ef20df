package results

import (
	"sort"
	"strings"
	"time"

	"github.com/padelstats/fipscrape/internal/event"
	"github.com/sirupsen/logrus"
)

// Scraper drives the per-event results pipeline against the widget:
// key resolution, day discovery, per-day fetch and parse. Execution is
// strictly sequential; the politeness delay after each day fetch is a
// deliberate throughput cap.
type Scraper struct {
	fetch      Fetcher
	widgetBase string
	delay      time.Duration
	log        logrus.FieldLogger
}

// NewScraper creates a Scraper. widgetBase must not end with a slash.
func NewScraper(f Fetcher, widgetBase string, delay time.Duration, log logrus.FieldLogger) *Scraper {
	return &Scraper{
		fetch:      f,
		widgetBase: strings.TrimRight(widgetBase, "/"),
		delay:      delay,
		log:        log,
	}
}

// CollectEvent fetches every result day for one event and returns the
// flat records, stamped with the event's name, URL, widget year and day.
// An event without a resolvable key contributes zero records. Days are
// visited in ascending numeric order regardless of discovery order; a day
// whose fetch fails is logged and skipped without aborting later days.
func (s *Scraper) CollectEvent(ev *event.Event) ([]event.Record, error) {
	html, err := s.fetch.Get(ev.URL)
	if err != nil {
		return nil, err
	}

	key := ResolveKey(html, ev.Year, ev.URL)
	if key == nil {
		s.log.WithField("event", ev.Name).Debug("no results key on event page")
		return nil, nil
	}

	code := key.Code()
	days, err := s.DiscoverDays(code)
	if err != nil {
		return nil, err
	}

	indices := make([]int, 0, len(days))
	for day := range days {
		indices = append(indices, day)
	}
	sort.Ints(indices)

	var records []event.Record
	for _, day := range indices {
		dayLog := s.log.WithFields(logrus.Fields{
			"event": ev.Name,
			"code":  code,
			"day":   day,
		})

		dayHTML, err := s.fetch.Get(s.dayURL(code, day))
		if err != nil {
			dayLog.WithError(err).Warn("skipping day after fetch failure")
			continue
		}

		matches, err := ParseDay(strings.NewReader(dayHTML))
		if err != nil {
			dayLog.WithError(err).Warn("skipping unparseable day")
			continue
		}
		dayLog.WithField("matches", len(matches)).Debug("day parsed")

		for _, m := range matches {
			records = append(records, event.Record{
				EventName: ev.Name,
				EventURL:  ev.URL,
				EventYear: key.EventYear,
				DayNumber: day,
				DayLabel:  days[day],
				Match:     m,
			})
		}

		time.Sleep(s.delay)
	}

	return records, nil
}
