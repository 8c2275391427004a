package domain

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// InterviewStatus represents the status of an interview
type InterviewStatus string

const (
	InterviewStatusScheduled     InterviewStatus = "Scheduled"
	InterviewStatusInWaitingRoom InterviewStatus = "InWaitingRoom"
	InterviewStatusInProgress    InterviewStatus = "InProgress"
	InterviewStatusCompleted     InterviewStatus = "Completed"
	InterviewStatusCancelled     InterviewStatus = "Cancelled"
	InterviewStatusRescheduled   InterviewStatus = "Rescheduled"
)

// Допустимые переходы статусов. Completed, Cancelled и Rescheduled конечные
var interviewTransitions = map[InterviewStatus][]InterviewStatus{
	InterviewStatusScheduled: {
		InterviewStatusInWaitingRoom,
		InterviewStatusInProgress,
		InterviewStatusCompleted,
		InterviewStatusCancelled,
		InterviewStatusRescheduled,
	},
	InterviewStatusInWaitingRoom: {
		InterviewStatusInProgress,
		InterviewStatusCompleted,
		InterviewStatusCancelled,
		InterviewStatusRescheduled,
	},
	InterviewStatusInProgress: {
		InterviewStatusCompleted,
	},
}

// IsValid returns true for known statuses
func (s InterviewStatus) IsValid() bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusInWaitingRoom, InterviewStatusInProgress,
		InterviewStatusCompleted, InterviewStatusCancelled, InterviewStatusRescheduled:
		return true
	}
	return false
}

// CanTransitionTo returns true if the status machine allows s -> next
func (s InterviewStatus) CanTransitionTo(next InterviewStatus) bool {
	for _, allowed := range interviewTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no transition is possible from s
func (s InterviewStatus) IsTerminal() bool {
	return len(interviewTransitions[s]) == 0
}

// Interview represents a scheduled video interview for an application
type Interview struct {
	ID                 int64
	ApplicationID      int64
	CompanyID          int64
	CandidateProfileID int64
	ScheduledAt        time.Time
	EndsAt             time.Time
	Status             InterviewStatus
	RoomID             string

	CancellationReason *string
	RescheduledFromID  *int64
	CancelledAt        *time.Time

	// Заполняются при чтении (join с companies / candidate_profiles)
	CompanyUserID   int64
	CandidateUserID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the interview blocks its time range for new bookings
func (i *Interview) OccupiesSlot() bool {
	return i.Status != InterviewStatusCancelled && i.Status != InterviewStatusRescheduled
}

// CanBeCancelled returns true if the interview can be cancelled
func (i *Interview) CanBeCancelled() bool {
	return i.Status == InterviewStatusScheduled || i.Status == InterviewStatusInWaitingRoom
}

// CanBeRescheduled returns true if the interview can be moved to another slot
func (i *Interview) CanBeRescheduled() bool {
	return i.Status == InterviewStatusScheduled || i.Status == InterviewStatusInWaitingRoom
}

// Slot returns the time range occupied by the interview
func (i *Interview) Slot() Slot {
	return Slot{Start: i.ScheduledAt, End: i.EndsAt}
}

// IsParty returns true if the user is the company owner or the candidate
func (i *Interview) IsParty(userID int64) bool {
	return userID == i.CompanyUserID || userID == i.CandidateUserID
}

// GenerateRoomID returns a new unique video room identifier
func GenerateRoomID() string {
	id := uuid.New()
	return RoomIDPrefix + hex.EncodeToString(id[:])
}

// InterviewsFilter фильтр для списка собеседований
type InterviewsFilter struct {
	CompanyID          *int64     // Собеседования компании
	CandidateProfileID *int64     // Собеседования кандидата
	From               *time.Time // Начало периода (опционально)
	To                 *time.Time // Конец периода (опционально)
	IncludeInactive    bool       // Включать Cancelled / Rescheduled
}

// CancelledInterview snapshot returned after cancellation
type CancelledInterview struct {
	InterviewID        int64
	ApplicationID      int64
	CompanyID          int64
	CompanyUserID      int64
	CandidateProfileID int64
	CandidateUserID    int64
	ScheduledAt        time.Time
	EndsAt             time.Time
	Reason             string
	CancelledBy        UserRole
	CancelledAt        time.Time
}
