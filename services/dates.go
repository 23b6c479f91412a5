package services

import "time"

// Day boundaries are computed in UTC so the stored log_date is stable no
// matter where the process runs.

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	start := startOfDay(t)
	return start, start.Add(24 * time.Hour)
}
