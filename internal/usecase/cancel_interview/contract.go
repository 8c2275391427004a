package cancel_interview

import (
	"context"
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
)

// InterviewRepository интерфейс репозитория собеседований
type InterviewRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Interview, error)
	Cancel(ctx context.Context, id int64, expected domain.InterviewStatus, reason string, cancelledAt time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventDispatcher публикует события после коммита
type EventDispatcher interface {
	Dispatch(event domain.Event)
}

// Metrics счётчики операций с собеседованиями
type Metrics interface {
	RecordInterviewOperation(operation, outcome string)
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
