package delete_blocked_period

import "context"

type AvailabilityService interface {
	DeleteBlockedPeriod(ctx context.Context, userID, periodID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
