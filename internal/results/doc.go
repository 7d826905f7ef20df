// Package results reconstructs match results from the external
// results-by-day widget: it resolves an event's widget key from its page,
// discovers the day pagination, parses each day's court tables into
// matches and stamps them with the owning event's metadata.
package results
