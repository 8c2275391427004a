package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterviewStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from InterviewStatus
		to   InterviewStatus
		want bool
	}{
		{InterviewStatusScheduled, InterviewStatusInWaitingRoom, true},
		{InterviewStatusScheduled, InterviewStatusCancelled, true},
		{InterviewStatusScheduled, InterviewStatusRescheduled, true},
		{InterviewStatusInWaitingRoom, InterviewStatusInProgress, true},
		{InterviewStatusInWaitingRoom, InterviewStatusScheduled, false},
		{InterviewStatusInProgress, InterviewStatusCompleted, true},
		{InterviewStatusInProgress, InterviewStatusCancelled, false},
		{InterviewStatusCompleted, InterviewStatusScheduled, false},
		{InterviewStatusCancelled, InterviewStatusScheduled, false},
		{InterviewStatusRescheduled, InterviewStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.True(t, InterviewStatusCompleted.IsTerminal())
	assert.True(t, InterviewStatusCancelled.IsTerminal())
	assert.True(t, InterviewStatusRescheduled.IsTerminal())
	assert.False(t, InterviewStatusScheduled.IsTerminal())
}

func TestInterview_OccupiesSlot(t *testing.T) {
	for _, status := range []InterviewStatus{
		InterviewStatusScheduled, InterviewStatusInWaitingRoom, InterviewStatusInProgress, InterviewStatusCompleted,
	} {
		assert.True(t, (&Interview{Status: status}).OccupiesSlot(), status)
	}
	for _, status := range InactiveInterviewStatuses {
		assert.False(t, (&Interview{Status: status}).OccupiesSlot(), status)
	}
}

func TestGenerateRoomID(t *testing.T) {
	a := GenerateRoomID()
	b := GenerateRoomID()

	assert.True(t, strings.HasPrefix(a, RoomIDPrefix))
	assert.Len(t, a, len(RoomIDPrefix)+32)
	assert.NotEqual(t, a, b)
}

func TestSlot_Overlaps(t *testing.T) {
	day := time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	slot := Slot{Start: at(10, 0), End: at(11, 30)}

	assert.True(t, slot.Overlaps(at(11, 0), at(12, 30)))
	assert.False(t, slot.Overlaps(at(11, 30), at(13, 0)))
	assert.False(t, slot.Overlaps(at(8, 30), at(10, 0)))
	assert.True(t, slot.Overlaps(at(9, 0), at(18, 0)))
}

func TestNewWeeklyTemplate_LatestActiveWins(t *testing.T) {
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	tpl := NewWeeklyTemplate([]*WeeklyAvailability{
		{ID: 1, DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "18:00", IsActive: true, UpdatedAt: older},
		{ID: 2, DayOfWeek: time.Monday, StartTime: "10:00", EndTime: "12:00", IsActive: true, UpdatedAt: newer},
		{ID: 3, DayOfWeek: time.Monday, StartTime: "07:00", EndTime: "08:00", IsActive: false, UpdatedAt: newer.Add(time.Hour)},
		{ID: 4, DayOfWeek: time.Tuesday, StartTime: "09:00", EndTime: "18:00", IsActive: true, UpdatedAt: older},
		{ID: 5, DayOfWeek: time.Tuesday, StartTime: "13:00", EndTime: "18:00", IsActive: true, UpdatedAt: older},
	})

	assert.Equal(t, int64(2), tpl[time.Monday].ID)
	assert.Equal(t, int64(5), tpl[time.Tuesday].ID)
	assert.Nil(t, tpl.For(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
}
