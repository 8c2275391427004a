package cancel_interview

import (
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
	"github.com/Am1ne12/JobConnect/internal/usecase/cancel_interview"
)

// CancelInterviewRequest HTTP request model
type CancelInterviewRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// CancelInterviewResponse HTTP response model
type CancelInterviewResponse struct {
	InterviewID   int64     `json:"interviewId"`
	ApplicationID int64     `json:"applicationId"`
	CompanyID     int64     `json:"companyId"`
	Status        string    `json:"status"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	EndsAt        time.Time `json:"endsAt"`
	Reason        string    `json:"reason"`
	CancelledBy   string    `json:"cancelledBy"`
	CancelledAt   time.Time `json:"cancelledAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelInterviewRequest) ToUseCaseRequest(userID, interviewID int64) *cancel_interview.Request {
	return &cancel_interview.Request{
		UserID:      userID,
		InterviewID: interviewID,
		Reason:      r.Reason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *cancel_interview.Response) *CancelInterviewResponse {
	return &CancelInterviewResponse{
		InterviewID:   resp.InterviewID,
		ApplicationID: resp.ApplicationID,
		CompanyID:     resp.CompanyID,
		Status:        string(domain.InterviewStatusCancelled),
		ScheduledAt:   resp.ScheduledAt,
		EndsAt:        resp.EndsAt,
		Reason:        resp.Reason,
		CancelledBy:   resp.CancelledBy,
		CancelledAt:   resp.CancelledAt,
	}
}
