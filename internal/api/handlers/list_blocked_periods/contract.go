package list_blocked_periods

import (
	"context"

	"github.com/Am1ne12/JobConnect/internal/service/availability/models"
)

type AvailabilityService interface {
	ListBlockedPeriods(ctx context.Context, req *models.ListBlockedPeriodsRequest) (*models.BlockedPeriodListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
