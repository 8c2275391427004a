package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Am1ne12/JobConnect/internal/domain"
	profileRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/profile"
	"github.com/Am1ne12/JobConnect/pkg/tracing"
)

// Config ограничения диапазона запроса
type Config struct {
	DefaultDays int
	MaxDays     int
}

// UseCase use case для получения свободных слотов для записи на собеседование
type UseCase struct {
	slotService  SlotService
	companyRepo  CompanyRepository
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotService SlotService,
	companyRepo CompanyRepository,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.DefaultDays <= 0 {
		cfg.DefaultDays = domain.DefaultRangeDays
	}
	return &UseCase{
		slotService:  slotService,
		companyRepo:  companyRepo,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := tracing.StartSpan(ctx, "GetAvailableSlots",
		attribute.Int64("company.id", req.CompanyID),
		attribute.Int("days", req.Days),
	)
	defer span.End()

	uc.logger.Info("GetAvailableSlots: user=%d, company=%d, days=%d", req.UserID, req.CompanyID, req.Days)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование компании
	if _, err := uc.companyRepo.GetCompanyByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, profileRepo.ErrCompanyNotFound) {
			uc.logger.Warn("GetAvailableSlots: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get company id=%d: %v", req.CompanyID, err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	// 4. Диапазон: по умолчанию с завтрашнего дня
	startDate := uc.slotService.StartOfDay(now).AddDate(0, 0, 1)
	if req.StartDate != nil {
		// Дата календарная: берём год, месяц и день как есть и строим полночь в часовом поясе слотов
		d := *req.StartDate
		startDate = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, uc.slotService.Location())
	}
	days := resolveDays(req.Days, uc.cfg.DefaultDays, uc.cfg.MaxDays)

	// 5. Свободные слоты
	free, err := uc.slotService.GetSlotsForRange(ctx, req.CompanyID, startDate, days)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slots for company=%d: %v", req.CompanyID, err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 6. Отбрасываем слоты раньше минимального срока записи
	earliest := uc.slotService.EarliestBookable(now)
	slots := make([]Slot, 0, len(free))
	for _, slot := range free {
		if slot.Start.Before(earliest) {
			continue
		}
		slots = append(slots, Slot{Start: slot.Start, End: slot.End})
	}

	uc.logger.Info("GetAvailableSlots: found %d free slots for company=%d from %s for %d days",
		len(slots), req.CompanyID, startDate.Format(domain.DateFormat), days)

	return &Response{
		CompanyID:       req.CompanyID,
		StartDate:       startDate,
		Days:            days,
		DurationMinutes: int(uc.slotService.Duration() / time.Minute),
		Slots:           slots,
	}, nil
}
