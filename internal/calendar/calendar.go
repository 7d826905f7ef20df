package calendar

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/padelstats/fipscrape/internal/event"
)

var (
	eventURLPattern  = regexp.MustCompile(`https?://www\.padelfip\.com/events/[^"'#?\s]+/?`)
	dateRangePattern = regexp.MustCompile(`From\s+(\d{2}/\d{2}/\d{4})\s+to\s+(\d{2}/\d{2}/\d{4})`)
	statusPattern    = regexp.MustCompile(`(?i)\b(FINISHED|LIVE|REGISTRATION OPEN|REGISTRATION CLOSED)\b`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

// Strategy records which extraction path produced the events, so callers
// and tests can observe layout drift instead of guessing from the output.
type Strategy string

const (
	// StrategyContainers is the primary path: block containers holding an
	// event link and the "From" date-range marker.
	StrategyContainers Strategy = "containers"
	// StrategyLinks is the fallback path: a bare scan of event links,
	// yielding minimal events with only name and URL.
	StrategyLinks Strategy = "links"
)

// ParseYear extracts the events listed on one year's calendar page.
// Events are deduplicated by URL, first occurrence wins.
func ParseYear(r io.Reader, year int) ([]*event.Event, Strategy, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("parsing HTML: %w", err)
	}

	seen := make(map[string]bool)
	events := make([]*event.Event, 0)

	// Primary strategy: the "From DD/MM/YYYY to DD/MM/YYYY" marker reliably
	// precedes the date range in the observed layout.
	doc.Find("div, article, li, section").Each(func(i int, sel *goquery.Selection) {
		if !strings.Contains(sel.Text(), "From") {
			return
		}
		link := findEventLink(sel)
		if link == nil {
			return
		}
		ev := eventFromContainer(sel, link, year)
		if ev == nil || seen[ev.URL] {
			return
		}
		seen[ev.URL] = true
		events = append(events, ev)
	})

	if len(events) > 0 {
		return events, StrategyContainers, nil
	}

	// Fallback for layout drift: every event link becomes a minimal entry.
	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !eventURLPattern.MatchString(href) || seen[href] {
			return
		}
		seen[href] = true
		events = append(events, &event.Event{
			Year: year,
			Name: normalizeSpace(sel.Text()),
			URL:  href,
		})
	})

	return events, StrategyLinks, nil
}

// findEventLink returns the first anchor in the container whose href
// matches the event URL pattern, or nil.
func findEventLink(container *goquery.Selection) *goquery.Selection {
	var link *goquery.Selection
	container.Find("a[href]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if eventURLPattern.MatchString(href) {
			link = sel
			return false
		}
		return true
	})
	return link
}

// eventFromContainer extracts an Event from one qualifying container.
// Heuristics that miss a field leave it empty; that is expected, not an
// error, given how often the upstream layout changes.
func eventFromContainer(container, link *goquery.Selection, year int) *event.Event {
	url, ok := link.Attr("href")
	if !ok || url == "" {
		return nil
	}

	ev := &event.Event{
		Year: year,
		Name: normalizeSpace(link.Text()),
		URL:  url,
	}

	text := normalizeSpace(container.Text())
	m := dateRangePattern.FindStringSubmatchIndex(text)
	if m == nil {
		ev.Status = extractStatus(text)
		return ev
	}

	ev.DateStart = text[m[2]:m[3]]
	ev.DateEnd = text[m[4]:m[5]]

	after := strings.TrimSpace(text[m[1]:])
	ev.Status = extractStatus(after)
	if ev.Status != "" {
		ev.Location = strings.Trim(strings.SplitN(after, string(ev.Status), 2)[0], " -|")
	} else {
		ev.Location = strings.Trim(after, " -|")
	}

	return ev
}

// extractStatus matches the bounded status vocabulary, case-insensitive,
// returning the canonical uppercase form or "".
func extractStatus(text string) event.Status {
	m := statusPattern.FindString(text)
	if m == "" {
		return ""
	}
	return event.Status(strings.ToUpper(m))
}

func normalizeSpace(text string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}
