package schedule_interview

import (
	"context"
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
)

// ApplicationRepository интерфейс репозитория откликов
type ApplicationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
}

// ProfileRepository интерфейс для определения профиля кандидата
type ProfileRepository interface {
	GetCandidateByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error)
}

// InterviewRepository интерфейс репозитория собеседований
type InterviewRepository interface {
	LockCompany(ctx context.Context, companyID int64) error
	Create(ctx context.Context, interview *domain.Interview) (*domain.Interview, error)
}

// SlotService интерфейс сервиса свободных слотов
type SlotService interface {
	IsSlotFree(ctx context.Context, companyID int64, instant time.Time) (bool, error)
	EarliestBookable(now time.Time) time.Time
	Duration() time.Duration
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
