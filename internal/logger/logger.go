// Package logger configures the process-wide structured logger. Progress
// is reported per year, per event and per day; per-event and per-day
// failures are warnings, a failed calendar fetch for a year is an error.
package logger

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// New builds a logrus logger writing to out. Unknown levels fall back to
// info rather than failing: logging must never stop a run.
func New(level, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}

// WithRun stamps every entry of a run with a fresh run identifier so
// interleaved or archived logs can be told apart.
func WithRun(log *logrus.Logger) *logrus.Entry {
	return log.WithField("run_id", uuid.NewString())
}
