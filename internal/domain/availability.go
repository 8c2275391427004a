package domain

import (
	"time"

	"github.com/Am1ne12/JobConnect/pkg/types"
)

// WeeklyAvailability represents one weekday of a company's recurring interview hours
type WeeklyAvailability struct {
	ID        int64
	CompanyID int64
	DayOfWeek time.Weekday // 0 = Sunday
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWorkday returns true for Monday..Friday
func IsWorkday(d time.Weekday) bool {
	return d >= time.Monday && d <= time.Friday
}

// WeeklyTemplate effective availability per weekday (at most one per day)
type WeeklyTemplate map[time.Weekday]*WeeklyAvailability

// For returns the availability for the date's weekday or nil
func (t WeeklyTemplate) For(date time.Time) *WeeklyAvailability {
	if t == nil {
		return nil
	}
	return t[date.Weekday()]
}

// NewWeeklyTemplate collapses rows into one effective row per weekday:
// only active rows, the most recently updated one wins (then the highest id)
func NewWeeklyTemplate(rows []*WeeklyAvailability) WeeklyTemplate {
	tpl := make(WeeklyTemplate, len(rows))
	for _, row := range rows {
		if row == nil || !row.IsActive {
			continue
		}
		current, ok := tpl[row.DayOfWeek]
		if !ok || row.UpdatedAt.After(current.UpdatedAt) ||
			(row.UpdatedAt.Equal(current.UpdatedAt) && row.ID > current.ID) {
			tpl[row.DayOfWeek] = row
		}
	}
	return tpl
}
