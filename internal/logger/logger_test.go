package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"nonsense", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := New(tt.level, "text", &bytes.Buffer{})
			if log.GetLevel() != tt.expected {
				t.Errorf("level %q: got %v, expected %v", tt.level, log.GetLevel(), tt.expected)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "json", &buf)
	log.WithField("year", 2025).Info("calendar parsed")

	out := buf.String()
	if !strings.Contains(out, `"year":2025`) {
		t.Errorf("expected JSON field in output, got %q", out)
	}
	if !strings.Contains(out, `"msg":"calendar parsed"`) {
		t.Errorf("expected JSON message in output, got %q", out)
	}
}

func TestWithRun(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "json", &buf)

	entry := WithRun(log)
	if entry.Data["run_id"] == "" {
		t.Error("expected a run_id field")
	}

	other := WithRun(log)
	if entry.Data["run_id"] == other.Data["run_id"] {
		t.Error("run ids should differ between runs")
	}
}
