package create_blocked_period

import (
	"time"

	"github.com/Am1ne12/JobConnect/internal/service/availability/models"
)

// CreateBlockedPeriodRequest HTTP request model
type CreateBlockedPeriodRequest struct {
	StartTime *time.Time `json:"startTime" validate:"required"`
	EndTime   *time.Time `json:"endTime" validate:"required"`
	Reason    *string    `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlockedPeriodRequest) ToServiceRequest(userID int64) *models.CreateBlockedPeriodRequest {
	return &models.CreateBlockedPeriodRequest{
		UserID:    userID,
		StartTime: *r.StartTime,
		EndTime:   *r.EndTime,
		Reason:    r.Reason,
	}
}
