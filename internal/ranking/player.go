package ranking

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/padelstats/fipscrape/internal/event"
)

// Profile is the detail view of a single player page.
type Profile struct {
	Name            string `json:"name"`
	URL             string `json:"url"`
	Country         string `json:"country"`
	Points          string `json:"points"`
	DateOfBirth     string `json:"date_of_birth,omitempty"`
	Age             int    `json:"age,omitempty"`
	Height          string `json:"height,omitempty"`
	Birthplace      string `json:"birthplace,omitempty"`
	PlayingPosition string `json:"playing_position,omitempty"`
	Coach           string `json:"coach,omitempty"`
	Image           string `json:"image,omitempty"`
}

var (
	countryAlt      = regexp.MustCompile(`^[A-Z]{3}$`)
	dobPattern      = regexp.MustCompile(`(?i)Date of birth\s*(\d{1,2}/\d{1,2}/\d{4})`)
	heightPattern   = regexp.MustCompile(`(?i)Height\s*(\d{1,3}(?:[.,]\d{1,2})?\s*(?:cm|m)?)`)
	bornPattern     = regexp.MustCompile(`(?i)Born in\s*([^•\n]+?)\s*(?:Coach|Playing|$)`)
	positionPattern = regexp.MustCompile(`(?i)Playing position\s*(Left|Right)`)
	coachPattern    = regexp.MustCompile(`(?i)Coach\s*:?\s*([A-Z][a-zA-Z .'-]{2,60}?)\s*(?:Playing|Date of birth|Height|Born in|Points|Related|$)`)

	// Page chrome that must never be mistaken for the player's name.
	headingBlocklist = map[string]bool{
		"ranking":      true,
		"rankings":     true,
		"calendar":     true,
		"news":         true,
		"sponsors":     true,
		"related news": true,
	}
)

// ParseProfile extracts a player profile from their page. The URL is
// carried through for the output row, and recovers the name when no
// usable heading exists.
func ParseProfile(r io.Reader, url string) (*Profile, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing player page: %w", err)
	}

	p := &Profile{URL: url, Country: "Unknown", Points: "0"}

	p.Name = findName(doc)
	if p.Name == "" {
		p.Name = slugToName(url)
	}

	doc.Find("img").EachWithBreak(func(i int, img *goquery.Selection) bool {
		if alt, ok := img.Attr("alt"); ok && countryAlt.MatchString(alt) {
			p.Country = alt
			return false
		}
		return true
	})

	doc.Find("img").EachWithBreak(func(i int, img *goquery.Selection) bool {
		src, _ := img.Attr("src")
		alt, _ := img.Attr("alt")
		if strings.Contains(src, "uploads") && strings.HasSuffix(src, ".png") &&
			!strings.Contains(alt, "Fip") {
			p.Image = src
			return false
		}
		return true
	})

	text := normalizeSpace(doc.Text())

	if m := pointsPattern.FindStringSubmatch(text); m != nil {
		p.Points = m[1]
	}
	if m := dobPattern.FindStringSubmatch(text); m != nil {
		p.DateOfBirth = m[1]
		if born := event.ParseDMY(m[1]); !born.IsZero() {
			p.Age = yearsSince(born, time.Now())
		}
	}
	if m := heightPattern.FindStringSubmatch(text); m != nil {
		p.Height = strings.TrimSpace(m[1])
	}
	if m := bornPattern.FindStringSubmatch(text); m != nil {
		place := strings.TrimSpace(m[1])
		if len(place) < 100 {
			p.Birthplace = place
		}
	}
	if m := positionPattern.FindStringSubmatch(text); m != nil {
		p.PlayingPosition = m[1]
	}
	if m := coachPattern.FindStringSubmatch(text); m != nil {
		p.Coach = strings.TrimSpace(m[1])
	}

	return p, nil
}

// findName prefers the page's h2 headings over h1: the h1 on profile
// pages is usually the site banner.
func findName(doc *goquery.Document) string {
	var name string
	for _, selector := range []string{"h2", "h1"} {
		doc.Find(selector).EachWithBreak(func(i int, h *goquery.Selection) bool {
			candidate := normalizeSpace(h.Text())
			if candidate == "" || headingBlocklist[strings.ToLower(candidate)] {
				return true
			}
			name = candidate
			return false
		})
		if name != "" {
			break
		}
	}
	return name
}

func yearsSince(born, now time.Time) int {
	years := now.Year() - born.Year()
	if now.YearDay() < born.YearDay() {
		years--
	}
	return years
}
