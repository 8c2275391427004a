package reschedule_interview

import (
	"time"

	"github.com/Am1ne12/JobConnect/internal/usecase/reschedule_interview"
)

// RescheduleInterviewRequest HTTP request model
type RescheduleInterviewRequest struct {
	ScheduledAt *time.Time `json:"scheduledAt" validate:"required"`
	Reason      *string    `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleInterviewRequest) ToUseCaseRequest(userID, interviewID int64) *reschedule_interview.Request {
	return &reschedule_interview.Request{
		UserID:      userID,
		InterviewID: interviewID,
		NewStart:    *r.ScheduledAt,
		Reason:      r.Reason,
	}
}
