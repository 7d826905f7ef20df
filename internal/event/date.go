package event

import "time"

// ParseDMY parses the DD/MM/YYYY dates used on the calendar and player
// pages. Returns time.Time{} (zero value) if parsing fails.
func ParseDMY(text string) time.Time {
	if text == "" {
		return time.Time{}
	}

	t, err := time.Parse("02/01/2006", text)
	if err == nil {
		return t
	}

	// Single-digit day or month, e.g. "5/3/2025"
	t, err = time.Parse("2/1/2006", text)
	if err == nil {
		return t
	}

	return time.Time{}
}

// IsFinished reports whether the calendar marked the event as finished.
func (e *Event) IsFinished() bool {
	return e.Status == StatusFinished
}

// HasDates reports whether the calendar exposed a date range for the event.
func (e *Event) HasDates() bool {
	return e.DateStart != "" && e.DateEnd != ""
}
