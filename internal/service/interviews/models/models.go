package models

import (
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
)

// Request модели

// ListInterviewsRequest список собеседований пользователя
type ListInterviewsRequest struct {
	UserID          int64
	Role            domain.UserRole
	IncludeInactive bool
}

// Response модели

// InterviewResponse собеседование на проводе
type InterviewResponse struct {
	ID                 int64     `json:"id"`
	ApplicationID      int64     `json:"applicationId"`
	CompanyID          int64     `json:"companyId"`
	CandidateProfileID int64     `json:"candidateProfileId"`
	Status             string    `json:"status"`
	ScheduledAt        time.Time `json:"scheduledAt"`
	EndsAt             time.Time `json:"endsAt"`
	RoomID             string    `json:"roomId"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
	RescheduledFromID  *int64    `json:"rescheduledFromId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// InterviewListResponse список собеседований
type InterviewListResponse struct {
	Interviews []InterviewResponse `json:"interviews"`
}

// JoinResponse данные для подключения к видеокомнате
type JoinResponse struct {
	InterviewID int64     `json:"interviewId"`
	RoomID      string    `json:"roomId"`
	Status      string    `json:"status"`
	Role        string    `json:"role"`
	ScheduledAt time.Time `json:"scheduledAt"`
	EndsAt      time.Time `json:"endsAt"`
}

// Методы конвертации

// FromDomainInterview конвертирует domain модель в DTO
func FromDomainInterview(i *domain.Interview) *InterviewResponse {
	if i == nil {
		return nil
	}

	return &InterviewResponse{
		ID:                 i.ID,
		ApplicationID:      i.ApplicationID,
		CompanyID:          i.CompanyID,
		CandidateProfileID: i.CandidateProfileID,
		Status:             string(i.Status),
		ScheduledAt:        i.ScheduledAt,
		EndsAt:             i.EndsAt,
		RoomID:             i.RoomID,
		CancellationReason: i.CancellationReason,
		RescheduledFromID:  i.RescheduledFromID,
		CreatedAt:          i.CreatedAt,
		UpdatedAt:          i.UpdatedAt,
	}
}

// FromDomainInterviewList конвертирует список domain моделей в DTO
func FromDomainInterviewList(interviews []*domain.Interview) *InterviewListResponse {
	resp := &InterviewListResponse{
		Interviews: make([]InterviewResponse, 0, len(interviews)),
	}

	for _, i := range interviews {
		if dto := FromDomainInterview(i); dto != nil {
			resp.Interviews = append(resp.Interviews, *dto)
		}
	}

	return resp
}
