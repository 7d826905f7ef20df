package results

import (
	"regexp"
	"strconv"

	"github.com/padelstats/fipscrape/internal/event"
)

var (
	eventYearPattern = regexp.MustCompile(`eventYear2\s*=\s*"(\d{4})"`)
	eventIDPattern   = regexp.MustCompile(`eventID2\s*=\s*"(\d+)"`)
	idEventPattern   = regexp.MustCompile(`idEvent_(\d+)`)
	urlYearPattern   = regexp.MustCompile(`-(\d{4})/?$`)
)

// ResolveKey extracts the results-widget identifier embedded in an event
// page. The id comes from the named widget variable, with a generic
// idEvent_<digits> fallback; the year comes from the widget variable, then
// a 4-digit suffix on the event URL, then the calendar year the event was
// discovered under. A nil key means the page exposes no identifier and the
// event yields zero match records. That is a skip, not an error.
func ResolveKey(html string, fallbackYear int, eventURL string) *event.ResultsKey {
	id := firstSubmatch(eventIDPattern, html)
	if id == "" {
		id = firstSubmatch(idEventPattern, html)
	}
	if id == "" {
		return nil
	}

	year := fallbackYear
	if y := firstSubmatch(eventYearPattern, html); y != "" {
		year, _ = strconv.Atoi(y)
	} else if y := firstSubmatch(urlYearPattern, eventURL); y != "" {
		year, _ = strconv.Atoi(y)
	}

	return &event.ResultsKey{EventYear: year, EventID: id}
}

func firstSubmatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}
