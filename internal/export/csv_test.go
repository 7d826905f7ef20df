package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/padelstats/fipscrape/internal/event"
	"github.com/padelstats/fipscrape/internal/ranking"
	"github.com/padelstats/fipscrape/internal/venue"
)

func testEvents() []*event.Event {
	return []*event.Event{
		{
			Year:      2025,
			Name:      "FIP Bronze Mallorca",
			URL:       "https://www.padelfip.com/events/fip-bronze-mallorca-2026/",
			DateStart: "02/06/2025",
			DateEnd:   "08/06/2025",
			Location:  "Mallorca, Spain",
			Status:    event.StatusFinished,
		},
		{
			Year: 2025,
			Name: "FIP Star Lima",
			URL:  "https://www.padelfip.com/events/fip-star-lima-2025/",
		},
	}
}

func TestWriteTournaments(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTournaments(&buf, testEvents()); err != nil {
		t.Fatalf("WriteTournaments failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "year,name,url,date_start,date_end,location,status" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "FIP Bronze Mallorca") || !strings.Contains(lines[1], "02/06/2025") {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	// Zero dates render as empty fields.
	if !strings.Contains(lines[2], ",,") {
		t.Errorf("expected empty dates in second row: %q", lines[2])
	}
}

func TestWriteResults(t *testing.T) {
	records := []event.Record{{
		Match: event.Match{
			Court:  "Court 1",
			Round:  "Round of 16",
			Team1:  "Garcia/Lopez",
			Team2:  "Diaz/Ruiz",
			Score:  "6-3 4-6 7-",
			Status: "RET",
		},
		EventName: "FIP Bronze Mallorca",
		EventURL:  "https://www.padelfip.com/events/fip-bronze-mallorca-2026/",
		EventYear: 2025,
		DayNumber: 1,
		DayLabel:  "DAY 1 - MON",
	}}

	var buf bytes.Buffer
	if err := WriteResults(&buf, records); err != nil {
		t.Fatalf("WriteResults failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "event_name,event_url,event_year,day_number") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "6-3 4-6 7-") || !strings.Contains(lines[1], "RET") {
		t.Errorf("unexpected row: %q", lines[1])
	}
}

func TestWriteVenues(t *testing.T) {
	venues := []venue.Info{{
		TournamentName: "FIP Bronze Mallorca",
		TournamentURL:  "https://www.padelfip.com/events/fip-bronze-mallorca-2026/",
		Year:           2025,
		VenueName:      "Club Padel Mallorca",
		VenueCity:      "Palma",
		NumCourts:      4,
		IndoorOutdoor:  "Outdoor",
	}}

	var buf bytes.Buffer
	if err := WriteVenues(&buf, venues); err != nil {
		t.Fatalf("WriteVenues failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "Club Padel Mallorca") || !strings.Contains(lines[1], ",4,") {
		t.Errorf("unexpected row: %q", lines[1])
	}
}

func TestWriteRankingAndProfiles(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRanking(&buf, []ranking.Player{
		{Rank: "1", Name: "Agustin Tapia", Country: "ARG", Points: "15200"},
	})
	if err != nil {
		t.Fatalf("WriteRanking failed: %v", err)
	}
	if !strings.Contains(buf.String(), "1,Agustin Tapia,ARG,15200") {
		t.Errorf("unexpected ranking output: %q", buf.String())
	}

	buf.Reset()
	err = WriteProfiles(&buf, []*ranking.Profile{{
		Name:    "Agustin Tapia",
		URL:     "https://www.padelfip.com/player/agustin-tapia/",
		Country: "ARG",
		Points:  "15200",
		Age:     27,
	}})
	if err != nil {
		t.Fatalf("WriteProfiles failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Agustin Tapia") || !strings.Contains(buf.String(), ",27,") {
		t.Errorf("unexpected profile output: %q", buf.String())
	}
}
