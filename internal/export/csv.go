// Package export writes scraped data out as CSV files or into a sqlite
// database. Rows are written in source order so output is reproducible
// run to run.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/padelstats/fipscrape/internal/event"
	"github.com/padelstats/fipscrape/internal/ranking"
	"github.com/padelstats/fipscrape/internal/venue"
)

func writeAll(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTournaments writes the calendar listing.
func WriteTournaments(w io.Writer, events []*event.Event) error {
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		rows = append(rows, []string{
			strconv.Itoa(ev.Year),
			ev.Name,
			ev.URL,
			ev.DateStart,
			ev.DateEnd,
			ev.Location,
			string(ev.Status),
		})
	}
	return writeAll(w, []string{
		"year", "name", "url", "date_start", "date_end", "location", "status",
	}, rows)
}

// WriteResults writes match records, one row per match.
func WriteResults(w io.Writer, records []event.Record) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.EventName,
			r.EventURL,
			strconv.Itoa(r.EventYear),
			strconv.Itoa(r.DayNumber),
			r.DayLabel,
			r.Court,
			r.Round,
			r.Team1,
			r.Team2,
			r.Score,
			r.Status,
		})
	}
	return writeAll(w, []string{
		"event_name", "event_url", "event_year", "day_number", "day_label",
		"court", "round", "team1", "team2", "score", "status",
	}, rows)
}

// WriteVenues writes one venue row per tournament.
func WriteVenues(w io.Writer, venues []venue.Info) error {
	rows := make([][]string, 0, len(venues))
	for _, v := range venues {
		courts := ""
		if v.NumCourts > 0 {
			courts = strconv.Itoa(v.NumCourts)
		}
		rows = append(rows, []string{
			strconv.Itoa(v.Year),
			v.TournamentName,
			v.TournamentURL,
			v.VenueName,
			v.VenueAddress,
			v.VenueCity,
			v.VenueCountry,
			v.CourtSurface,
			courts,
			v.IndoorOutdoor,
		})
	}
	return writeAll(w, []string{
		"year", "tournament_name", "tournament_url", "venue_name",
		"venue_address", "venue_city", "venue_country", "court_surface",
		"num_courts", "indoor_outdoor",
	}, rows)
}

// WriteRanking writes the ranking listing.
func WriteRanking(w io.Writer, players []ranking.Player) error {
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{p.Rank, p.Name, p.Country, p.Points, p.Image})
	}
	return writeAll(w, []string{"rank", "player", "country", "points", "image"}, rows)
}

// WriteProfiles writes detailed player rows.
func WriteProfiles(w io.Writer, profiles []*ranking.Profile) error {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		age := ""
		if p.Age > 0 {
			age = strconv.Itoa(p.Age)
		}
		rows = append(rows, []string{
			p.Name,
			p.URL,
			p.Country,
			p.Points,
			p.DateOfBirth,
			age,
			p.Height,
			p.Birthplace,
			p.PlayingPosition,
			p.Coach,
			p.Image,
		})
	}
	return writeAll(w, []string{
		"name", "url", "country", "points", "date_of_birth", "age", "height",
		"birthplace", "playing_position", "coach", "image",
	}, rows)
}
