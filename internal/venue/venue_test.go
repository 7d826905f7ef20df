package venue

import (
	"strings"
	"testing"

	"github.com/padelstats/fipscrape/internal/event"
)

func testEvent() *event.Event {
	return &event.Event{
		Year:     2025,
		Name:     "FIP Bronze Mallorca",
		URL:      "https://www.padelfip.com/events/fip-bronze-mallorca-2026/",
		Location: "Mallorca, Spain",
	}
}

func TestExtractFromText(t *testing.T) {
	html := `<html><body>
<div>VENUE Club Padel Mallorca
ADDRESS Calle del Mar 12, 07001 Palma (Illes Balears)
PRACTICE COURTS 4
COURT CONDITIONS Outdoor</div>
</body></html>`

	info := Extract(strings.NewReader(html), testEvent())

	if info.TournamentName != "FIP Bronze Mallorca" {
		t.Errorf("unexpected tournament name: %q", info.TournamentName)
	}
	if info.VenueName != "Club Padel Mallorca" {
		t.Errorf("unexpected venue name: %q", info.VenueName)
	}
	if !strings.Contains(info.VenueAddress, "Calle del Mar 12") {
		t.Errorf("unexpected address: %q", info.VenueAddress)
	}
	if info.NumCourts != 4 {
		t.Errorf("unexpected court count: %d", info.NumCourts)
	}
	if info.IndoorOutdoor != "Outdoor" {
		t.Errorf("unexpected conditions: %q", info.IndoorOutdoor)
	}
	if info.VenueCity != "Palma" {
		t.Errorf("expected city guessed from postal code, got %q", info.VenueCity)
	}
	if info.VenueCountry != "Mallorca, Spain" {
		t.Errorf("country should fall back to the calendar location, got %q", info.VenueCountry)
	}
}

func TestExtractScrubsContactNoise(t *testing.T) {
	html := `<html><body>
<div>VENUE Central Arena phone 5551234567 ADDRESS Av. Libertador 2201, Buenos Aires</div>
</body></html>`

	info := Extract(strings.NewReader(html), testEvent())
	if strings.Contains(info.VenueName, "555") || strings.Contains(strings.ToLower(info.VenueName), "phone") {
		t.Errorf("contact noise should be scrubbed, got %q", info.VenueName)
	}
	if info.VenueName != "Central Arena" {
		t.Errorf("unexpected venue name: %q", info.VenueName)
	}
}

func TestExtractTableFallback(t *testing.T) {
	html := `<html><body>
<table>
  <tr><td>Estadio Central</td><td>Main</td><td>Avenida Siempreviva 742, Springfield</td></tr>
</table>
</body></html>`

	info := Extract(strings.NewReader(html), testEvent())
	if info.VenueName != "Estadio Central" {
		t.Errorf("unexpected venue name: %q", info.VenueName)
	}
	if info.VenueAddress != "Avenida Siempreviva 742, Springfield" {
		t.Errorf("unexpected address: %q", info.VenueAddress)
	}
}

func TestExtractSkipsRosterTables(t *testing.T) {
	html := `<html><body>
<table>
  <tr><td>Pairs</td><td>Gender</td><td>Country of origin list</td></tr>
  <tr><td>Garcia/Lopez</td><td>Male</td><td>Espana Madrid Calle 123456789</td></tr>
</table>
</body></html>`

	info := Extract(strings.NewReader(html), testEvent())
	if info.VenueName != "" {
		t.Errorf("roster table should be skipped, got venue %q", info.VenueName)
	}
	if info.VenueAddress != "" {
		t.Errorf("roster table should be skipped, got address %q", info.VenueAddress)
	}
}

func TestExtractMissingEverything(t *testing.T) {
	info := Extract(strings.NewReader("<html><body><p>Nothing useful.</p></body></html>"), testEvent())

	if info.VenueName != "" || info.VenueAddress != "" || info.NumCourts != 0 {
		t.Errorf("expected empty fields, got %+v", info)
	}
	if info.VenueCity != "Mallorca, Spain" {
		t.Errorf("city should fall back to the calendar location, got %q", info.VenueCity)
	}
}
