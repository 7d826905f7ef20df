// Package venue guesses venue and court details from an event's page.
// Everything here is a best-effort heuristic over loosely structured
// text: fields the page does not expose stay empty, extraction never
// fails.
package venue

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/padelstats/fipscrape/internal/event"
)

// Info is one venue row, keyed to the tournament it was extracted from.
type Info struct {
	TournamentName string `json:"tournament_name"`
	TournamentURL  string `json:"tournament_url"`
	Year           int    `json:"year"`
	VenueName      string `json:"venue_name,omitempty"`
	VenueAddress   string `json:"venue_address,omitempty"`
	VenueCity      string `json:"venue_city,omitempty"`
	VenueCountry   string `json:"venue_country,omitempty"`
	CourtSurface   string `json:"court_surface,omitempty"`
	NumCourts      int    `json:"num_courts,omitempty"`
	IndoorOutdoor  string `json:"indoor_outdoor,omitempty"`
}

var (
	venuePattern      = regexp.MustCompile(`(?i)VENUE\s*([^\n]+?)\s*(?:ADDRESS|PRACTICE)`)
	addressPattern    = regexp.MustCompile(`(?is)ADDRESS\s*([^\n]+?)(?:\s+PRACTICE COURT|\s+TOURNAMENT|\n\s*\n|$)`)
	practicePattern   = regexp.MustCompile(`(?i)PRACTICE COURTS?\s*(\d+)`)
	conditionsPattern = regexp.MustCompile(`(?i)COURT CONDITIONS\s*(Indoor|Outdoor)`)
	longDigitsPattern = regexp.MustCompile(`\d{3,}`)
	contactPattern    = regexp.MustCompile(`(?i)phone|email|tel\.?`)
	orderOfPlay       = regexp.MustCompile(`(?i)Order of Play.*`)
	loadingNoise      = regexp.MustCompile(`(?i)Loading.*`)
	genderNoise       = regexp.MustCompile(`(?i)Male.*Female.*`)
	rosterTokens      = regexp.MustCompile(`\b(gender|male|female|pairs|match)\b`)
	headerTokens      = regexp.MustCompile(`(?i)\b(tournament|director|gender|male|female)\b`)
	streetPattern     = regexp.MustCompile(`(?i)\d+|street|avenue|road|calle|rue|via`)
	cityPattern       = regexp.MustCompile(`(?:^|\s)(\d{4,5})\s+([A-Z][a-zA-Z\s]+?)(?:\s*\(|\s*,|\s*$)`)
	spacePattern      = regexp.MustCompile(`\s+`)
)

// Extract pulls venue and court information out of an event page. The
// event's calendar location doubles as the country guess and as the city
// fallback.
func Extract(r io.Reader, ev *event.Event) Info {
	info := Info{
		TournamentName: ev.Name,
		TournamentURL:  ev.URL,
		Year:           ev.Year,
		VenueCity:      ev.Location,
		VenueCountry:   ev.Location,
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return info
	}

	// Trim so the end-of-text anchor in addressPattern can fire even when
	// the rendered text carries trailing whitespace.
	text := strings.TrimSpace(doc.Text())

	if m := venuePattern.FindStringSubmatch(text); m != nil {
		name := normalizeSpace(m[1])
		name = longDigitsPattern.ReplaceAllString(name, "")
		name = contactPattern.ReplaceAllString(name, "")
		name = normalizeSpace(name)
		if len(name) > 3 {
			info.VenueName = name
		}
	}

	if m := addressPattern.FindStringSubmatch(text); m != nil {
		addr := normalizeSpace(m[1])
		addr = orderOfPlay.ReplaceAllString(addr, "")
		addr = loadingNoise.ReplaceAllString(addr, "")
		addr = genderNoise.ReplaceAllString(addr, "")
		addr = normalizeSpace(addr)
		if len(addr) > 5 {
			info.VenueAddress = addr
		}
	}

	if m := practicePattern.FindStringSubmatch(text); m != nil {
		info.NumCourts, _ = strconv.Atoi(m[1])
	}

	if m := conditionsPattern.FindStringSubmatch(text); m != nil {
		cond := strings.ToLower(m[1])
		info.IndoorOutdoor = strings.ToUpper(cond[:1]) + cond[1:]
	}

	// Facility tables are a second chance for name and address.
	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		if rosterTokens.MatchString(strings.ToLower(normalizeSpace(table.Text()))) {
			return
		}
		table.Find("tr").Each(func(j int, row *goquery.Selection) {
			var cells []string
			row.Find("td, th").Each(func(k int, cell *goquery.Selection) {
				cells = append(cells, normalizeSpace(cell.Text()))
			})
			if len(cells) < 3 {
				return
			}
			if info.VenueName == "" && len(cells[0]) > 3 && !headerTokens.MatchString(cells[0]) {
				info.VenueName = cells[0]
			}
			if info.VenueAddress == "" {
				for _, cell := range cells[2:] {
					if len(cell) > 15 && streetPattern.MatchString(cell) {
						info.VenueAddress = cell
						break
					}
				}
			}
		})
	})

	// Addresses often carry "postal-code City (Region)"; prefer that city
	// over the calendar location.
	if info.VenueAddress != "" {
		if m := cityPattern.FindStringSubmatch(info.VenueAddress); m != nil {
			info.VenueCity = strings.TrimSpace(m[2])
		}
	}

	return info
}

func normalizeSpace(text string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}
