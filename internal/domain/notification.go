package domain

import "time"

// EventType тип события для realtime / kafka
type EventType string

const (
	EventAvailabilityUpdated    EventType = "AvailabilityUpdated"
	EventSlotBooked             EventType = "SlotBooked"
	EventInterviewScheduled     EventType = "InterviewScheduled"
	EventInterviewRescheduled   EventType = "InterviewRescheduled"
	EventInterviewCancelled     EventType = "InterviewCancelled"
	EventInterviewStatusChanged EventType = "InterviewStatusChanged"
)

// Event is published after a successful commit. Delivery is best effort
type Event struct {
	Type        EventType
	CompanyID   int64
	InterviewID int64
	// Получатели realtime уведомления
	RecipientUserIDs []int64
	Status           InterviewStatus
	SlotStart        *time.Time
	SlotEnd          *time.Time
	Reason           *string
	OccurredAt       time.Time
}
