package availability

import (
	"context"
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]*domain.WeeklyAvailability, error)
	CountByCompany(ctx context.Context, companyID int64) (int, error)
	ReplaceForCompany(ctx context.Context, companyID int64, items []*domain.WeeklyAvailability) ([]*domain.WeeklyAvailability, error)
}

// BlockedPeriodRepository интерфейс репозитория периодов недоступности
type BlockedPeriodRepository interface {
	Create(ctx context.Context, period *domain.BlockedPeriod) (*domain.BlockedPeriod, error)
	GetByID(ctx context.Context, id int64) (*domain.BlockedPeriod, error)
	ListByCompany(ctx context.Context, companyID int64, from, to *time.Time) ([]*domain.BlockedPeriod, error)
	Delete(ctx context.Context, id int64) error
}

// ProfileRepository интерфейс для определения компании пользователя
type ProfileRepository interface {
	GetCompanyByUserID(ctx context.Context, userID int64) (*domain.Company, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventDispatcher публикует события после успешной записи
type EventDispatcher interface {
	Dispatch(event domain.Event)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
