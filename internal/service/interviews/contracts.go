package interviews

import (
	"context"
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
)

// InterviewRepository интерфейс репозитория собеседований
type InterviewRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Interview, error)
	List(ctx context.Context, filter domain.InterviewsFilter) ([]*domain.Interview, error)
	UpdateStatus(ctx context.Context, id int64, expected, next domain.InterviewStatus) error
}

// ProfileRepository интерфейс для определения профиля пользователя
type ProfileRepository interface {
	GetCompanyByUserID(ctx context.Context, userID int64) (*domain.Company, error)
	GetCandidateByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error)
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
