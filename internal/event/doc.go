// Package event defines the records produced by the extraction pipeline:
// calendar events, results-widget keys, per-match rows and the flattened
// output records that join the two.
package event
