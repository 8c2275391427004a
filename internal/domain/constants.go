package domain

// Default scheduling values
const (
	DefaultInterviewDurationMinutes = 90
	DefaultRangeDays                = 14
	DefaultJoinWindowMinutes        = 15
)

// Default template created by initialization: Mon-Fri 09:00-18:00
const (
	DefaultWorkdayStart = "09:00"
	DefaultWorkdayEnd   = "18:00"
)

// Business validation constants
const (
	MaxCancellationReasonLength = 500
	MaxBlockedReasonLength      = 500
	DefaultRescheduleReason     = "Rescheduled to new time"
	RoomIDPrefix                = "jobconnect-"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveInterviewStatuses статусы, которые не занимают слот
var InactiveInterviewStatuses = []InterviewStatus{
	InterviewStatusCancelled,
	InterviewStatusRescheduled,
}
