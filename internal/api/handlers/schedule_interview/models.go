package schedule_interview

import (
	"time"

	"github.com/Am1ne12/JobConnect/internal/usecase/schedule_interview"
)

// ScheduleInterviewRequest HTTP request model
type ScheduleInterviewRequest struct {
	ApplicationID int64      `json:"applicationId" validate:"required,gt=0"`
	ScheduledAt   *time.Time `json:"scheduledAt" validate:"required"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleInterviewRequest) ToUseCaseRequest(userID int64) *schedule_interview.Request {
	return &schedule_interview.Request{
		UserID:        userID,
		ApplicationID: r.ApplicationID,
		ScheduledAt:   *r.ScheduledAt,
	}
}
