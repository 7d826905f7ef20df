package results

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var dayIndexPattern = regexp.MustCompile(`/resultsbyday/[^/]+/(\d+)`)

// Fetcher retrieves a page body for a URL. Satisfied by fetch.Client.
type Fetcher interface {
	Get(url string) (string, error)
}

// DiscoverDays enumerates the day indices for which per-day result pages
// exist, keyed to their link labels. It scans the day-1 index page for
// pagination anchors; unlabeled links are dropped. When nothing is found
// the event is assumed to be a single-day event whose pagination UI is
// absent, and {1: "DAY 1"} is returned.
func (s *Scraper) DiscoverDays(code string) (map[int]string, error) {
	html, err := s.fetch.Get(s.dayURL(code, 1))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing day index: %w", err)
	}

	days := make(map[int]string)
	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, "/screen/resultsbyday/") {
			return
		}
		m := dayIndexPattern.FindStringSubmatch(href)
		if m == nil {
			return
		}
		label := normalizeSpace(sel.Text())
		if label == "" {
			return
		}
		day, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		days[day] = label
	})

	if len(days) == 0 {
		days[1] = "DAY 1"
	}

	return days, nil
}

// dayURL builds the widget URL for one day of an event's results.
func (s *Scraper) dayURL(code string, day int) string {
	return fmt.Sprintf("%s/screen/resultsbyday/%s/%d?t=tol", s.widgetBase, code, day)
}
