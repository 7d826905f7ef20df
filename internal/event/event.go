package event

import "fmt"

// Status is the tournament lifecycle state shown on the calendar page.
type Status string

const (
	StatusFinished           Status = "FINISHED"
	StatusLive               Status = "LIVE"
	StatusRegistrationOpen   Status = "REGISTRATION OPEN"
	StatusRegistrationClosed Status = "REGISTRATION CLOSED"
)

// Event is one tournament entry extracted from a yearly calendar page.
// The URL is the event's identity: duplicates by URL are discarded with
// the first occurrence winning. Optional fields stay empty when the
// calendar layout does not expose them.
type Event struct {
	Year      int    `json:"year"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	DateStart string `json:"date_start,omitempty"`
	DateEnd   string `json:"date_end,omitempty"`
	Location  string `json:"location,omitempty"`
	Status    Status `json:"status,omitempty"`
}

// ResultsKey is the year+identifier pair the external results widget uses
// to address an event. It is derived from the event page and never stored
// on its own; an event without a resolvable key simply has no results.
type ResultsKey struct {
	EventYear int
	EventID   string
}

// Code builds the event code consumed by the results-by-day widget pages.
func (k ResultsKey) Code() string {
	return fmt.Sprintf("FIP-%d-%s", k.EventYear, k.EventID)
}

// Match is one reconstructed result row: the two team labels paired with
// their set-by-set score string. Status is "RET" when either team's row
// carried the retirement suffix.
type Match struct {
	Court  string `json:"court"`
	Round  string `json:"round"`
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Score  string `json:"score"`
	Status string `json:"status,omitempty"`
}

// Record is the flat output row: a Match stamped with the owning event's
// metadata and the day it was played on.
type Record struct {
	EventName string `json:"event_name"`
	EventURL  string `json:"event_url"`
	EventYear int    `json:"event_year"`
	DayNumber int    `json:"day_number"`
	DayLabel  string `json:"day_label"`
	Match
}
