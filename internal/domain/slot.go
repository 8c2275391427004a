package domain

import "time"

// Slot represents a bookable [Start, End) interval. Never stored
type Slot struct {
	Start time.Time
	End   time.Time
}

// Overlaps returns true if the half-open intervals [s.Start, s.End) and [start, end) intersect
func (s Slot) Overlaps(start, end time.Time) bool {
	return s.Start.Before(end) && s.End.After(start)
}

// Duration returns the slot length
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
