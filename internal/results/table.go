package results

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/padelstats/fipscrape/internal/event"
)

const statsMarker = "COMPLETED MATCH STATS"

var (
	digitPattern = regexp.MustCompile(`\d`)
	spacePattern = regexp.MustCompile(`\s+`)
	// Roster listings (player/pair tables) share the page with result
	// tables and would otherwise parse as garbage matches.
	rosterPattern = regexp.MustCompile(`\b(gender|male|female|pairs|match)\b`)
)

// ParseDay reconstructs the matches from one day's rendered widget page.
// Every per-court table contributes at most one match; malformed tables
// (too few header cells, too few team rows, roster listings) are skipped
// silently since legitimate pages contain many non-result tables.
func ParseDay(r io.Reader) ([]event.Match, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing day page: %w", err)
	}

	matches := make([]event.Match, 0)
	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		if m := parseResultTable(table); m != nil {
			matches = append(matches, *m)
		}
	})

	return matches, nil
}

// parseResultTable turns one court table into a match, or nil when the
// table is not a two-team result table. Row 0 is the header supplying
// court and round; the first two surviving data rows are the teams.
func parseResultTable(table *goquery.Selection) *event.Match {
	rows := table.Find("tr")
	if rows.Length() < 3 {
		return nil
	}

	if isRosterTable(table) {
		return nil
	}

	header := cellTexts(rows.Eq(0))
	if len(header) < 2 {
		return nil
	}

	var dataRows [][]string
	rows.Slice(1, rows.Length()).Each(func(i int, row *goquery.Selection) {
		cells := cellTexts(row)
		if len(cells) == 0 {
			return
		}
		// Inline expandable stats panel, not a team row.
		if strings.Contains(strings.ToUpper(strings.Join(cells, " ")), statsMarker) {
			return
		}
		dataRows = append(dataRows, cells)
	})
	if len(dataRows) < 2 {
		return nil
	}

	team1, ret1 := parseTeamCell(dataRows[0][0])
	team2, ret2 := parseTeamCell(dataRows[1][0])

	status := ""
	if ret1 || ret2 {
		status = "RET"
	}

	return &event.Match{
		Court:  header[0],
		Round:  header[1],
		Team1:  team1,
		Team2:  team2,
		Score:  zipScores(extractScores(dataRows[0][1:]), extractScores(dataRows[1][1:])),
		Status: status,
	}
}

// isRosterTable flags tables that list players rather than results. The
// stats marker is scrubbed first so its "MATCH" token cannot disqualify a
// genuine result table.
func isRosterTable(table *goquery.Selection) bool {
	text := strings.ToLower(normalizeSpace(table.Text()))
	text = strings.ReplaceAll(text, strings.ToLower(statsMarker), "")
	return rosterPattern.MatchString(text)
}

// parseTeamCell splits the team label from a trailing retirement suffix.
func parseTeamCell(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, "RET") {
		return strings.TrimSpace(strings.TrimSuffix(text, "RET")), true
	}
	return text, false
}

// extractScores filters a team row's trailing cells down to set tokens.
// A cell survives if it contains a digit; the literal "-" placeholder is
// kept as an empty slot (set not played/recorded); everything else is
// decoration and dropped.
func extractScores(cells []string) []string {
	scores := make([]string, 0, len(cells))
	for _, cell := range cells {
		cell = strings.TrimSpace(cell)
		switch {
		case cell == "":
		case cell == "-":
			scores = append(scores, "")
		case digitPattern.MatchString(cell):
			scores = append(scores, cell)
		}
	}
	return scores
}

// zipScores pairs the two teams' set tokens position by position up to the
// longer sequence, padding the shorter side. A dash is trimmed only on a
// padded side; a side that is present but empty (the "-" placeholder)
// keeps its dash so the gap stays visible. Sets empty on both sides are
// omitted entirely.
func zipScores(scores1, scores2 []string) string {
	n := len(scores1)
	if len(scores2) > n {
		n = len(scores2)
	}

	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var s1, s2 string
		if i < len(scores1) {
			s1 = scores1[i]
		}
		if i < len(scores2) {
			s2 = scores2[i]
		}
		if s1 == "" && s2 == "" {
			continue
		}

		set := s1 + "-" + s2
		if s1 == "" && i >= len(scores1) {
			set = strings.TrimPrefix(set, "-")
		}
		if s2 == "" && i >= len(scores2) {
			set = strings.TrimSuffix(set, "-")
		}
		parts = append(parts, set)
	}

	return strings.Join(parts, " ")
}

// cellTexts returns the whitespace-normalized text of each th/td cell.
func cellTexts(row *goquery.Selection) []string {
	var cells []string
	row.Find("th, td").Each(func(i int, cell *goquery.Selection) {
		cells = append(cells, normalizeSpace(cell.Text()))
	})
	return cells
}

func normalizeSpace(text string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}
