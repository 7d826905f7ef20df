// Package ranking extracts the world-ranking table and individual player
// profiles from padelfip.com. Both extractors are layered: a structured
// table/heading read first, link-scan and text-pattern fallbacks when the
// layout has drifted.
package ranking

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Player is one row of the ranking listing.
type Player struct {
	Rank    string `json:"rank"`
	Name    string `json:"player"`
	Country string `json:"country"`
	Points  string `json:"points"`
	Image   string `json:"image,omitempty"`
}

// Link points at a player's profile page, with whatever ranking context
// the listing exposed around the link.
type Link struct {
	URL    string `json:"url"`
	Name   string `json:"name"`
	Rank   string `json:"rank"`
	Points string `json:"points"`
	Image  string `json:"image,omitempty"`
}

var (
	playerURLPattern = regexp.MustCompile(`/player/[^/]+/$`)
	leadingRank      = regexp.MustCompile(`^\s*(\d+)\s*`)
	pointsPattern    = regexp.MustCompile(`Points\s*(\d+)`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

// ParseRanking extracts the ranking rows. The first table on the page is
// the primary source; when it yields nothing the profile links are
// scanned instead. Duplicate player names keep their first occurrence.
func ParseRanking(r io.Reader) ([]Player, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing ranking page: %w", err)
	}

	players := parseRankingTable(doc)
	if len(players) == 0 {
		players = parseRankingLinks(doc)
	}

	seen := make(map[string]bool)
	unique := make([]Player, 0, len(players))
	for _, p := range players {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		unique = append(unique, p)
	}

	return unique, nil
}

func parseRankingTable(doc *goquery.Document) []Player {
	var players []Player

	table := doc.Find("table").First()
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header
		}
		cols := row.Find("td")
		if cols.Length() < 3 {
			return
		}

		p := Player{
			Rank:    normalizeSpace(cols.Eq(0).Text()),
			Name:    normalizeSpace(cols.Eq(1).Text()),
			Country: normalizeSpace(cols.Eq(2).Text()),
			Points:  "0",
		}
		if cols.Length() > 3 {
			p.Points = normalizeSpace(cols.Eq(3).Text())
		}
		if img := cols.Eq(1).Find("img").First(); img.Length() > 0 {
			p.Image, _ = img.Attr("src")
		}

		players = append(players, p)
	})

	return players
}

// parseRankingLinks reconstructs ranking rows from the profile links when
// no table parses: rank from the leading number in the link's container,
// country from a 3-letter flag alt, points from a "Points <n>" fragment.
func parseRankingLinks(doc *goquery.Document) []Player {
	var players []Player

	doc.Find("a[href]").Each(func(i int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !playerURLPattern.MatchString(href) {
			return
		}

		name := normalizeSpace(link.Text())
		if name == "" {
			return
		}

		p := Player{Name: name, Rank: "Unknown", Country: "Unknown", Points: "0"}

		container := link.Parent()
		text := container.Text()
		if m := leadingRank.FindStringSubmatch(text); m != nil {
			p.Rank = m[1]
		}
		if m := pointsPattern.FindStringSubmatch(text); m != nil {
			p.Points = m[1]
		}
		container.Find("img").EachWithBreak(func(j int, img *goquery.Selection) bool {
			if alt, ok := img.Attr("alt"); ok && countryAlt.MatchString(alt) {
				p.Country = alt
				return false
			}
			return true
		})
		container.Find("img").EachWithBreak(func(j int, img *goquery.Selection) bool {
			if src, ok := img.Attr("src"); ok && strings.Contains(src, "uploads") {
				p.Image = src
				return false
			}
			return true
		})

		if p.Rank != "Unknown" {
			players = append(players, p)
		}
	})

	return players
}

// ParseLinks lists the player profile URLs on the ranking page, for the
// profile scraper to walk. Deduplicated by URL, first occurrence wins.
func ParseLinks(r io.Reader) ([]Link, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing ranking page: %w", err)
	}

	seen := make(map[string]bool)
	var links []Link

	doc.Find("a[href]").Each(func(i int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !playerURLPattern.MatchString(href) || seen[href] {
			return
		}
		seen[href] = true

		name := normalizeSpace(link.Text())
		if name == "" || name == "info" {
			name = slugToName(href)
		}

		l := Link{URL: href, Name: name, Rank: "Unknown", Points: "0"}

		container := link.Parent()
		text := container.Text()
		if m := leadingRank.FindStringSubmatch(text); m != nil {
			l.Rank = m[1]
		}
		if m := pointsPattern.FindStringSubmatch(text); m != nil {
			l.Points = m[1]
		}
		container.Find("img").EachWithBreak(func(j int, img *goquery.Selection) bool {
			src, ok := img.Attr("src")
			if ok && strings.Contains(src, "uploads") && !strings.Contains(src, "Fip") {
				l.Image = src
				return false
			}
			return true
		})

		links = append(links, l)
	})

	return links, nil
}

// slugToName recovers a readable name from a profile URL slug.
func slugToName(href string) string {
	parts := strings.Split(strings.Trim(href, "/"), "/")
	slug := parts[len(parts)-1]
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func normalizeSpace(text string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}
