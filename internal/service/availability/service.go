package availability

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/Am1ne12/JobConnect/internal/domain"
	availabilityRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/availability"
	blockedPeriodRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/blocked_period"
	profileRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/profile"
	"github.com/Am1ne12/JobConnect/internal/service/availability/models"
	"github.com/Am1ne12/JobConnect/pkg/types"
)

// Service сервис управления недельным расписанием и периодами недоступности компании
type Service struct {
	availabilityRepo AvailabilityRepository
	blockedRepo      BlockedPeriodRepository
	profileRepo      ProfileRepository
	txManager        TransactionManager
	dispatcher       EventDispatcher
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	availabilityRepo AvailabilityRepository,
	blockedRepo BlockedPeriodRepository,
	profileRepo ProfileRepository,
	txManager TransactionManager,
	dispatcher EventDispatcher,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		blockedRepo:      blockedRepo,
		profileRepo:      profileRepo,
		txManager:        txManager,
		dispatcher:       dispatcher,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// GetTemplate получает недельное расписание компании пользователя
func (s *Service) GetTemplate(ctx context.Context, userID int64) (*models.TemplateResponse, error) {
	s.logger.Info("GetTemplate: fetching availability for user=%d", userID)

	company, err := s.resolveCompany(ctx, "GetTemplate", userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.availabilityRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		s.logger.Error("GetTemplate: repository error for company=%d: %v", company.ID, err)
		return nil, fmt.Errorf("%w: GetTemplate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTemplate(company.ID, rows), nil
}

// ReplaceTemplate полностью заменяет недельное расписание компании.
// Записи на субботу и воскресенье отбрасываются
func (s *Service) ReplaceTemplate(ctx context.Context, req *models.ReplaceTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("ReplaceTemplate: replacing availability by user=%d, days=%d", req.UserID, len(req.Days))

	// 1. Валидация и отбрасывание выходных
	items, dropped, err := toDomainTemplate(req.Days)
	if err != nil {
		s.logger.Warn("ReplaceTemplate: validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}
	for _, day := range dropped {
		s.logger.Warn("ReplaceTemplate: weekend entry dropped for user=%d: %s", req.UserID, day)
	}

	// 2. Компания пользователя
	company, err := s.resolveCompany(ctx, "ReplaceTemplate", req.UserID)
	if err != nil {
		return nil, err
	}

	// 3. Удаляем старое расписание и вставляем новое в одной транзакции
	var stored []*domain.WeeklyAvailability
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.availabilityRepo.ReplaceForCompany(txCtx, company.ID, items); err != nil {
			return err
		}
		rows, err := s.availabilityRepo.ListByCompany(txCtx, company.ID)
		stored = rows
		return err
	})
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrDuplicateWeekday) {
			return nil, fmt.Errorf("%w: duplicate weekday", ErrInvalidTemplate)
		}
		s.logger.Error("ReplaceTemplate: failed to replace availability for company=%d: %v", company.ID, err)
		return nil, fmt.Errorf("%w: ReplaceTemplate - transaction error: %v", ErrInternal, err)
	}

	s.notifyAvailabilityUpdated(company)

	s.logger.Info("ReplaceTemplate: stored %d days for company=%d", len(stored), company.ID)
	return models.FromDomainTemplate(company.ID, stored), nil
}

// InitializeDefault создает расписание Пн-Пт 09:00-18:00, если у компании ещё нет ни одной строки
func (s *Service) InitializeDefault(ctx context.Context, userID int64) (*models.TemplateResponse, error) {
	s.logger.Info("InitializeDefault: initializing availability for user=%d", userID)

	company, err := s.resolveCompany(ctx, "InitializeDefault", userID)
	if err != nil {
		return nil, err
	}

	var stored []*domain.WeeklyAvailability
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		count, err := s.availabilityRepo.CountByCompany(txCtx, company.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyInitialized
		}

		if _, err := s.availabilityRepo.ReplaceForCompany(txCtx, company.ID, defaultTemplate()); err != nil {
			return err
		}
		rows, err := s.availabilityRepo.ListByCompany(txCtx, company.ID)
		stored = rows
		return err
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyInitialized) {
			s.logger.Warn("InitializeDefault: company=%d already has availability", company.ID)
			return nil, ErrAlreadyInitialized
		}
		s.logger.Error("InitializeDefault: transaction error for company=%d: %v", company.ID, err)
		return nil, fmt.Errorf("%w: InitializeDefault - transaction error: %v", ErrInternal, err)
	}

	s.notifyAvailabilityUpdated(company)

	s.logger.Info("InitializeDefault: created default availability for company=%d", company.ID)
	return models.FromDomainTemplate(company.ID, stored), nil
}

// CreateBlockedPeriod создает период недоступности компании
func (s *Service) CreateBlockedPeriod(ctx context.Context, req *models.CreateBlockedPeriodRequest) (*models.BlockedPeriodResponse, error) {
	s.logger.Info("CreateBlockedPeriod: user=%d, %s - %s", req.UserID,
		req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	if !req.EndTime.After(req.StartTime) {
		s.logger.Warn("CreateBlockedPeriod: end is not after start for user=%d", req.UserID)
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidBlockedPeriod)
	}
	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxBlockedReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidBlockedPeriod)
	}

	company, err := s.resolveCompany(ctx, "CreateBlockedPeriod", req.UserID)
	if err != nil {
		return nil, err
	}

	period, err := s.blockedRepo.Create(ctx, &domain.BlockedPeriod{
		CompanyID: company.ID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	})
	if err != nil {
		s.logger.Error("CreateBlockedPeriod: repository error for company=%d: %v", company.ID, err)
		return nil, fmt.Errorf("%w: CreateBlockedPeriod - repository error: %v", ErrInternal, err)
	}

	s.notifyAvailabilityUpdated(company)

	s.logger.Info("CreateBlockedPeriod: created blocked period id=%d for company=%d", period.ID, company.ID)
	return models.FromDomainBlockedPeriod(period), nil
}

// ListBlockedPeriods периоды недоступности компании пользователя
func (s *Service) ListBlockedPeriods(ctx context.Context, req *models.ListBlockedPeriodsRequest) (*models.BlockedPeriodListResponse, error) {
	s.logger.Info("ListBlockedPeriods: fetching blocked periods for user=%d", req.UserID)

	company, err := s.resolveCompany(ctx, "ListBlockedPeriods", req.UserID)
	if err != nil {
		return nil, err
	}

	periods, err := s.blockedRepo.ListByCompany(ctx, company.ID, req.From, req.To)
	if err != nil {
		s.logger.Error("ListBlockedPeriods: repository error for company=%d: %v", company.ID, err)
		return nil, fmt.Errorf("%w: ListBlockedPeriods - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedPeriodList(periods), nil
}

// DeleteBlockedPeriod удаляет период. Только компания-владелец
func (s *Service) DeleteBlockedPeriod(ctx context.Context, userID, periodID int64) error {
	s.logger.Info("DeleteBlockedPeriod: deleting blocked period id=%d by user=%d", periodID, userID)

	company, err := s.resolveCompany(ctx, "DeleteBlockedPeriod", userID)
	if err != nil {
		return err
	}

	period, err := s.blockedRepo.GetByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, blockedPeriodRepo.ErrBlockedPeriodNotFound) {
			s.logger.Warn("DeleteBlockedPeriod: blocked period id=%d not found", periodID)
			return ErrBlockedPeriodNotFound
		}
		s.logger.Error("DeleteBlockedPeriod: repository error for id=%d: %v", periodID, err)
		return fmt.Errorf("%w: DeleteBlockedPeriod - repository error: %v", ErrInternal, err)
	}

	if period.CompanyID != company.ID {
		s.logger.Warn("DeleteBlockedPeriod: user=%d is not the owner of blocked period id=%d", userID, periodID)
		return ErrAccessDenied
	}

	if err := s.blockedRepo.Delete(ctx, periodID); err != nil {
		if errors.Is(err, blockedPeriodRepo.ErrBlockedPeriodNotFound) {
			return ErrBlockedPeriodNotFound
		}
		s.logger.Error("DeleteBlockedPeriod: repository error for id=%d: %v", periodID, err)
		return fmt.Errorf("%w: DeleteBlockedPeriod - repository error: %v", ErrInternal, err)
	}

	s.notifyAvailabilityUpdated(company)

	s.logger.Info("DeleteBlockedPeriod: deleted blocked period id=%d", periodID)
	return nil
}

// resolveCompany находит компанию пользователя
func (s *Service) resolveCompany(ctx context.Context, op string, userID int64) (*domain.Company, error) {
	company, err := s.profileRepo.GetCompanyByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrCompanyNotFound) {
			s.logger.Warn("%s: company for user=%d not found", op, userID)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("%s: failed to get company for user=%d: %v", op, userID, err)
		return nil, fmt.Errorf("%w: %s - get company: %v", ErrInternal, op, err)
	}
	return company, nil
}

func (s *Service) notifyAvailabilityUpdated(company *domain.Company) {
	s.dispatcher.Dispatch(domain.Event{
		Type:             domain.EventAvailabilityUpdated,
		CompanyID:        company.ID,
		RecipientUserIDs: []int64{company.UserID},
		OccurredAt:       s.timeProvider.Now(),
	})
}

// toDomainTemplate валидирует дни и возвращает рабочие дни; выходные возвращаются отдельно
func toDomainTemplate(days []models.DayRequest) ([]*domain.WeeklyAvailability, []time.Weekday, error) {
	items := make([]*domain.WeeklyAvailability, 0, len(days))
	dropped := make([]time.Weekday, 0)
	seen := make(map[int]bool, len(days))

	for _, day := range days {
		if day.DayOfWeek < int(time.Sunday) || day.DayOfWeek > int(time.Saturday) {
			return nil, nil, fmt.Errorf("%w: dayOfWeek %d out of range", ErrInvalidTemplate, day.DayOfWeek)
		}
		if seen[day.DayOfWeek] {
			return nil, nil, fmt.Errorf("%w: duplicate dayOfWeek %d", ErrInvalidTemplate, day.DayOfWeek)
		}
		seen[day.DayOfWeek] = true

		start, err := types.NewTimeStringFromString(day.StartTime)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: startTime: %v", ErrInvalidTemplate, err)
		}
		end, err := types.NewTimeStringFromString(day.EndTime)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: endTime: %v", ErrInvalidTemplate, err)
		}
		if !end.IsAfter(start) {
			return nil, nil, fmt.Errorf("%w: endTime must be after startTime for dayOfWeek %d", ErrInvalidTemplate, day.DayOfWeek)
		}

		weekday := time.Weekday(day.DayOfWeek)
		if !domain.IsWorkday(weekday) {
			dropped = append(dropped, weekday)
			continue
		}

		isActive := true
		if day.IsActive != nil {
			isActive = *day.IsActive
		}

		items = append(items, &domain.WeeklyAvailability{
			DayOfWeek: weekday,
			StartTime: start,
			EndTime:   end,
			IsActive:  isActive,
		})
	}

	return items, dropped, nil
}

func defaultTemplate() []*domain.WeeklyAvailability {
	items := make([]*domain.WeeklyAvailability, 0, 5)
	for day := time.Monday; day <= time.Friday; day++ {
		items = append(items, &domain.WeeklyAvailability{
			DayOfWeek: day,
			StartTime: types.MustTimeString(domain.DefaultWorkdayStart),
			EndTime:   types.MustTimeString(domain.DefaultWorkdayEnd),
			IsActive:  true,
		})
	}
	return items
}
