package replace_availability

import "github.com/Am1ne12/JobConnect/internal/service/availability/models"

// DayRequest HTTP модель дня недели
type DayRequest struct {
	DayOfWeek *int   `json:"dayOfWeek" validate:"required,min=0,max=6"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// ReplaceAvailabilityRequest HTTP request model
type ReplaceAvailabilityRequest struct {
	Days []DayRequest `json:"days" validate:"required,max=7,dive"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ReplaceAvailabilityRequest) ToServiceRequest(userID int64) *models.ReplaceTemplateRequest {
	days := make([]models.DayRequest, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, models.DayRequest{
			DayOfWeek: *d.DayOfWeek,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			IsActive:  d.IsActive,
		})
	}
	return &models.ReplaceTemplateRequest{UserID: userID, Days: days}
}
