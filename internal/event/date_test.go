package event

import (
	"testing"
	"time"
)

func TestParseDMY(t *testing.T) {
	tests := []struct {
		text     string
		expected time.Time
	}{
		{"10/03/2025", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)},
		{"01/12/2023", time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)},
		{"5/3/2025", time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"2025-03-10", time.Time{}},
		{"not a date", time.Time{}},
		{"", time.Time{}},
		{"32/01/2025", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ParseDMY(tt.text)
			if !got.Equal(tt.expected) {
				t.Errorf("ParseDMY(%q) = %v, expected %v", tt.text, got, tt.expected)
			}
		})
	}
}
