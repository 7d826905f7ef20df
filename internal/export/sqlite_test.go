package export

import (
	"path/filepath"
	"testing"

	"github.com/padelstats/fipscrape/internal/event"
	"github.com/padelstats/fipscrape/internal/ranking"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("counting %s: %v", table, err)
	}
	return n
}

func TestSaveTournamentsUpserts(t *testing.T) {
	s := openTestStore(t)

	events := testEvents()
	if err := s.SaveTournaments(events); err != nil {
		t.Fatalf("SaveTournaments failed: %v", err)
	}
	// A second run over the same calendar must not duplicate rows.
	if err := s.SaveTournaments(events); err != nil {
		t.Fatalf("SaveTournaments failed on rerun: %v", err)
	}

	if n := countRows(t, s, "tournaments"); n != 2 {
		t.Errorf("expected 2 tournaments, got %d", n)
	}

	var status string
	err := s.db.QueryRow("SELECT status FROM tournaments WHERE url = ?", events[0].URL).Scan(&status)
	if err != nil {
		t.Fatalf("querying tournament: %v", err)
	}
	if status != "FINISHED" {
		t.Errorf("unexpected status: %q", status)
	}
}

func TestSaveResultsSequencesPerDay(t *testing.T) {
	s := openTestStore(t)

	base := event.Record{
		EventName: "FIP Bronze Mallorca",
		EventURL:  "https://www.padelfip.com/events/fip-bronze-mallorca-2026/",
		EventYear: 2025,
	}
	r1, r2, r3 := base, base, base
	r1.DayNumber, r1.Court = 1, "Court 1"
	r2.DayNumber, r2.Court = 1, "Court 2"
	r3.DayNumber, r3.Court = 2, "Court 1"
	records := []event.Record{r1, r2, r3}

	if err := s.SaveResults(records); err != nil {
		t.Fatalf("SaveResults failed: %v", err)
	}
	if err := s.SaveResults(records); err != nil {
		t.Fatalf("SaveResults failed on rerun: %v", err)
	}

	if n := countRows(t, s, "match_records"); n != 3 {
		t.Errorf("rerun should upsert, expected 3 records, got %d", n)
	}

	var seq int
	err := s.db.QueryRow(
		"SELECT seq FROM match_records WHERE day_number = 1 AND court = ?", "Court 2").Scan(&seq)
	if err != nil {
		t.Fatalf("querying record: %v", err)
	}
	if seq != 2 {
		t.Errorf("expected second record of day 1 to get seq 2, got %d", seq)
	}
}

func TestSaveRankingAndProfiles(t *testing.T) {
	s := openTestStore(t)

	players := []ranking.Player{
		{Rank: "1", Name: "Agustin Tapia", Country: "ARG", Points: "15200"},
		{Rank: "2", Name: "Arturo Coello", Country: "ESP", Points: "15100"},
	}
	if err := s.SaveRanking(players); err != nil {
		t.Fatalf("SaveRanking failed: %v", err)
	}
	if n := countRows(t, s, "ranking"); n != 2 {
		t.Errorf("expected 2 ranking rows, got %d", n)
	}

	profiles := []*ranking.Profile{{
		Name:    "Agustin Tapia",
		URL:     "https://www.padelfip.com/player/agustin-tapia/",
		Country: "ARG",
		Points:  "15200",
		Age:     27,
	}}
	if err := s.SaveProfiles(profiles); err != nil {
		t.Fatalf("SaveProfiles failed: %v", err)
	}
	if err := s.SaveProfiles(profiles); err != nil {
		t.Fatalf("SaveProfiles failed on rerun: %v", err)
	}
	if n := countRows(t, s, "players"); n != 1 {
		t.Errorf("expected 1 profile row, got %d", n)
	}
}
