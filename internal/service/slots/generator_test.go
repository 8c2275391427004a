package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Am1ne12/JobConnect/internal/domain"
	"github.com/Am1ne12/JobConnect/pkg/types"
)

const interviewDuration = 90 * time.Minute

var (
	monday   = time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC)
)

func workday(day time.Weekday, start, end string) *domain.WeeklyAvailability {
	return &domain.WeeklyAvailability{
		ID:        1,
		CompanyID: 1,
		DayOfWeek: day,
		StartTime: types.MustTimeString(start),
		EndTime:   types.MustTimeString(end),
		IsActive:  true,
	}
}

func at(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

func starts(slots []domain.Slot) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.Start.Format(domain.TimeFormat)
	}
	return result
}

func TestGenerate_FullDay(t *testing.T) {
	slots := Generate(workday(time.Monday, "09:00", "18:00"), monday, interviewDuration)

	require.Len(t, slots, 6)
	assert.Equal(t, []string{"09:00", "10:30", "12:00", "13:30", "15:00", "16:30"}, starts(slots))
	for _, s := range slots {
		assert.Equal(t, interviewDuration, s.Duration())
	}
	assert.Equal(t, at(monday, 18, 0), slots[5].End)
}

func TestGenerate_Weekend(t *testing.T) {
	assert.Empty(t, Generate(workday(time.Saturday, "09:00", "18:00"), saturday, interviewDuration))
	assert.Empty(t, Generate(workday(time.Sunday, "09:00", "18:00"), sunday, interviewDuration))
}

func TestGenerate_EmptyCases(t *testing.T) {
	inactive := workday(time.Monday, "09:00", "18:00")
	inactive.IsActive = false

	tests := []struct {
		name         string
		availability *domain.WeeklyAvailability
		date         time.Time
		duration     time.Duration
	}{
		{"nil availability", nil, monday, interviewDuration},
		{"inactive", inactive, monday, interviewDuration},
		{"weekday mismatch", workday(time.Tuesday, "09:00", "18:00"), monday, interviewDuration},
		{"end before start", workday(time.Monday, "18:00", "09:00"), monday, interviewDuration},
		{"end equals start", workday(time.Monday, "09:00", "09:00"), monday, interviewDuration},
		{"zero duration", workday(time.Monday, "09:00", "18:00"), monday, 0},
		{"window shorter than duration", workday(time.Monday, "09:00", "10:00"), monday, interviewDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Generate(tt.availability, tt.date, tt.duration))
		})
	}
}

func TestGenerate_PartialTailDropped(t *testing.T) {
	slots := Generate(workday(time.Tuesday, "09:00", "12:15"), tuesday, interviewDuration)
	assert.Equal(t, []string{"09:00", "10:30"}, starts(slots))
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(workday(time.Monday, "09:00", "18:00"), monday, interviewDuration)
	b := Generate(workday(time.Monday, "09:00", "18:00"), monday, interviewDuration)
	assert.Equal(t, a, b)
}
