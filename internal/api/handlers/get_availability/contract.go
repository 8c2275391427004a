package get_availability

import (
	"context"

	"github.com/Am1ne12/JobConnect/internal/service/availability/models"
)

type AvailabilityService interface {
	GetTemplate(ctx context.Context, userID int64) (*models.TemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
