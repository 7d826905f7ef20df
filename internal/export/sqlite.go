package export

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/padelstats/fipscrape/internal/event"
	"github.com/padelstats/fipscrape/internal/ranking"
	"github.com/padelstats/fipscrape/internal/venue"
)

// Store persists scraped data in a sqlite database. Re-running a scrape
// against the same database upserts rather than duplicates.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the database at path and ensures the
// schema exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) init() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS tournaments (
			url TEXT PRIMARY KEY,
			year INTEGER,
			name TEXT,
			date_start TEXT,
			date_end TEXT,
			location TEXT,
			status TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS match_records (
			event_url TEXT,
			event_name TEXT,
			event_year INTEGER,
			day_number INTEGER,
			day_label TEXT,
			seq INTEGER,
			court TEXT,
			round TEXT,
			team1 TEXT,
			team2 TEXT,
			score TEXT,
			status TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(event_url, day_number, seq)
		)`,
		`CREATE TABLE IF NOT EXISTS venues (
			tournament_url TEXT PRIMARY KEY,
			tournament_name TEXT,
			year INTEGER,
			venue_name TEXT,
			venue_address TEXT,
			venue_city TEXT,
			venue_country TEXT,
			court_surface TEXT,
			num_courts INTEGER,
			indoor_outdoor TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS ranking (
			player TEXT PRIMARY KEY,
			rank TEXT,
			country TEXT,
			points TEXT,
			image TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS players (
			url TEXT PRIMARY KEY,
			name TEXT,
			country TEXT,
			points TEXT,
			date_of_birth TEXT,
			age INTEGER,
			height TEXT,
			birthplace TEXT,
			playing_position TEXT,
			coach TEXT,
			image TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tournaments_year ON tournaments (year)`,
		`CREATE INDEX IF NOT EXISTS idx_match_records_event ON match_records (event_url)`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveTournaments upserts the calendar listing, keyed by event URL.
func (s *Store) SaveTournaments(events []*event.Event) error {
	for _, ev := range events {
		_, err := s.db.Exec(`
			INSERT OR REPLACE INTO tournaments
			(url, year, name, date_start, date_end, location, status, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
			ev.URL, ev.Year, ev.Name, ev.DateStart, ev.DateEnd,
			ev.Location, string(ev.Status))
		if err != nil {
			return fmt.Errorf("failed to save tournament %s: %w", ev.URL, err)
		}
	}
	return nil
}

// SaveResults upserts match records. Within one event a match has no
// natural key, so rows are numbered per day in scrape order.
func (s *Store) SaveResults(records []event.Record) error {
	seq := make(map[string]int)
	for _, r := range records {
		key := fmt.Sprintf("%s#%d", r.EventURL, r.DayNumber)
		seq[key]++

		_, err := s.db.Exec(`
			INSERT OR REPLACE INTO match_records
			(event_url, event_name, event_year, day_number, day_label, seq,
			 court, round, team1, team2, score, status, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
			r.EventURL, r.EventName, r.EventYear, r.DayNumber, r.DayLabel, seq[key],
			r.Court, r.Round, r.Team1, r.Team2, r.Score, r.Status)
		if err != nil {
			return fmt.Errorf("failed to save match record for %s: %w", r.EventURL, err)
		}
	}
	return nil
}

// SaveVenues upserts venue rows, keyed by tournament URL.
func (s *Store) SaveVenues(venues []venue.Info) error {
	for _, v := range venues {
		_, err := s.db.Exec(`
			INSERT OR REPLACE INTO venues
			(tournament_url, tournament_name, year, venue_name, venue_address,
			 venue_city, venue_country, court_surface, num_courts, indoor_outdoor, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
			v.TournamentURL, v.TournamentName, v.Year, v.VenueName, v.VenueAddress,
			v.VenueCity, v.VenueCountry, v.CourtSurface, v.NumCourts, v.IndoorOutdoor)
		if err != nil {
			return fmt.Errorf("failed to save venue for %s: %w", v.TournamentURL, err)
		}
	}
	return nil
}

// SaveRanking upserts the ranking listing, keyed by player name.
func (s *Store) SaveRanking(players []ranking.Player) error {
	for _, p := range players {
		_, err := s.db.Exec(`
			INSERT OR REPLACE INTO ranking
			(player, rank, country, points, image, updated_at)
			VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
			p.Name, p.Rank, p.Country, p.Points, p.Image)
		if err != nil {
			return fmt.Errorf("failed to save ranking row for %s: %w", p.Name, err)
		}
	}
	return nil
}

// SaveProfiles upserts player profiles, keyed by profile URL.
func (s *Store) SaveProfiles(profiles []*ranking.Profile) error {
	for _, p := range profiles {
		_, err := s.db.Exec(`
			INSERT OR REPLACE INTO players
			(url, name, country, points, date_of_birth, age, height,
			 birthplace, playing_position, coach, image, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
			p.URL, p.Name, p.Country, p.Points, p.DateOfBirth, p.Age, p.Height,
			p.Birthplace, p.PlayingPosition, p.Coach, p.Image)
		if err != nil {
			return fmt.Errorf("failed to save profile for %s: %w", p.URL, err)
		}
	}
	return nil
}
