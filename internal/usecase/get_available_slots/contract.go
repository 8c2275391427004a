package get_available_slots

import (
	"context"
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
)

// SlotService интерфейс сервиса расчёта свободных слотов
type SlotService interface {
	GetSlotsForRange(ctx context.Context, companyID int64, startDate time.Time, dayCount int) ([]domain.Slot, error)
	EarliestBookable(now time.Time) time.Time
	StartOfDay(t time.Time) time.Time
	Location() *time.Location
	Duration() time.Duration
}

// CompanyRepository интерфейс для проверки существования компании
type CompanyRepository interface {
	GetCompanyByID(ctx context.Context, id int64) (*domain.Company, error)
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
