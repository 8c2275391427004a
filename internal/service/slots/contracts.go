package slots

import (
	"context"
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]*domain.WeeklyAvailability, error)
}

// InterviewRepository интерфейс репозитория собеседований
type InterviewRepository interface {
	ListActiveInRange(ctx context.Context, companyID int64, from, to time.Time) ([]*domain.Interview, error)
}

// BlockedPeriodRepository интерфейс репозитория периодов недоступности
type BlockedPeriodRepository interface {
	ListByCompany(ctx context.Context, companyID int64, from, to *time.Time) ([]*domain.BlockedPeriod, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
