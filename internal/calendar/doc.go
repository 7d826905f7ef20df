// Package calendar parses the yearly tournament calendar pages on
// padelfip.com and extracts one Event per tournament container. It tries
// a container-based strategy first and falls back to a plain link scan
// when the page layout has drifted.
package calendar
