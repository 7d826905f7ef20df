// Package cli implements the command-line interface for fipscrape.
//
// The cli package provides the Cobra-based CLI with subcommands for the
// tournament-results pipeline (results), venue extraction (venues), the
// world ranking (rankings) and player profiles (players). It coordinates
// the fetch, calendar, results, venue, ranking and export packages and
// writes CSV or JSON files plus an optional sqlite database.
package cli
