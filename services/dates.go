package services

import "time"

// truncateToDay maps t onto its UTC calendar day. Day keys are always built
// and compared in UTC so a non-UTC server clock cannot split one day across
// two rows.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dayWindow returns the [start, end) bounds of the UTC day containing t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := truncateToDay(t)
	return start, start.Add(24 * time.Hour)
}
