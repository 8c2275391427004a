package create_blocked_period

import (
	"context"

	"github.com/Am1ne12/JobConnect/internal/service/availability/models"
)

type AvailabilityService interface {
	CreateBlockedPeriod(ctx context.Context, req *models.CreateBlockedPeriodRequest) (*models.BlockedPeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
