package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
	"github.com/Am1ne12/JobConnect/pkg/ptr"
)

// Config параметры генерации слотов
type Config struct {
	InterviewDuration time.Duration
	Location          *time.Location
	MinNoticeDays     int
}

// Service вычисляет свободные слоты компании
type Service struct {
	availabilityRepo AvailabilityRepository
	interviewRepo    InterviewRepository
	blockedRepo      BlockedPeriodRepository
	duration         time.Duration
	location         *time.Location
	minNoticeDays    int
	logger           Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	availabilityRepo AvailabilityRepository,
	interviewRepo InterviewRepository,
	blockedRepo BlockedPeriodRepository,
	cfg Config,
	logger Logger,
) *Service {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	duration := cfg.InterviewDuration
	if duration <= 0 {
		duration = domain.DefaultInterviewDurationMinutes * time.Minute
	}

	return &Service{
		availabilityRepo: availabilityRepo,
		interviewRepo:    interviewRepo,
		blockedRepo:      blockedRepo,
		duration:         duration,
		location:         location,
		minNoticeDays:    cfg.MinNoticeDays,
		logger:           logger,
	}
}

// Duration длительность собеседования
func (s *Service) Duration() time.Duration {
	return s.duration
}

// Location часовой пояс расчёта слотов
func (s *Service) Location() *time.Location {
	return s.location
}

// StartOfDay полночь дня t в часовом поясе сервиса
func (s *Service) StartOfDay(t time.Time) time.Time {
	local := t.In(s.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.location)
}

// EarliestBookable самый ранний момент, на который можно записаться:
// начало дня now + minNoticeDays, но не раньше now
func (s *Service) EarliestBookable(now time.Time) time.Time {
	earliest := s.StartOfDay(now).AddDate(0, 0, s.minNoticeDays)
	if earliest.Before(now) {
		return now
	}
	return earliest
}

// GetSlotsForDate свободные слоты компании на дату
func (s *Service) GetSlotsForDate(ctx context.Context, companyID int64, date time.Time) ([]domain.Slot, error) {
	return s.GetSlotsForRange(ctx, companyID, date, 1)
}

// GetSlotsForRange свободные слоты на dayCount дней начиная с startDate.
// Расписание, собеседования и блокировки загружаются один раз на весь диапазон
func (s *Service) GetSlotsForRange(ctx context.Context, companyID int64, startDate time.Time, dayCount int) ([]domain.Slot, error) {
	if dayCount <= 0 {
		return nil, fmt.Errorf("%w: dayCount=%d", ErrInvalidRange, dayCount)
	}

	from := s.StartOfDay(startDate)
	to := from.AddDate(0, 0, dayCount)

	// 1. Недельное расписание компании
	rows, err := s.availabilityRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("GetSlotsForRange: failed to load availability for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: GetSlotsForRange - load availability: %w", ErrInternal, err)
	}
	template := domain.NewWeeklyTemplate(rows)
	if len(template) == 0 {
		return []domain.Slot{}, nil
	}

	// 2. Активные собеседования и периоды недоступности, пересекающие диапазон
	interviews, err := s.interviewRepo.ListActiveInRange(ctx, companyID, from, to)
	if err != nil {
		s.logger.Error("GetSlotsForRange: failed to load interviews for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: GetSlotsForRange - load interviews: %w", ErrInternal, err)
	}

	blocked, err := s.blockedRepo.ListByCompany(ctx, companyID, ptr.Ptr(from), ptr.Ptr(to))
	if err != nil {
		s.logger.Error("GetSlotsForRange: failed to load blocked periods for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: GetSlotsForRange - load blocked periods: %w", ErrInternal, err)
	}

	// 3. Генерация и фильтрация по дням
	result := make([]domain.Slot, 0)
	for day := 0; day < dayCount; day++ {
		date := from.AddDate(0, 0, day)
		generated := Generate(template.For(date), date, s.duration)
		result = append(result, Filter(generated, interviews, blocked)...)
	}

	return result, nil
}

// IsSlotFree проверяет, что instant совпадает с началом свободного слота своего дня.
// Произвольное время (не на сетке слотов) занять нельзя
func (s *Service) IsSlotFree(ctx context.Context, companyID int64, instant time.Time) (bool, error) {
	free, err := s.GetSlotsForDate(ctx, companyID, instant)
	if err != nil {
		return false, err
	}

	for _, slot := range free {
		if slot.Start.Equal(instant) {
			return true, nil
		}
	}

	return false, nil
}
