package schedule_interview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Am1ne12/JobConnect/internal/domain"
	applicationRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/application"
	profileRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/profile"
	"github.com/Am1ne12/JobConnect/internal/service/interviews/models"
	"github.com/Am1ne12/JobConnect/pkg/ptr"
	"github.com/Am1ne12/JobConnect/pkg/tracing"
)

const operationName = "schedule"

// UseCase use case для записи кандидата на собеседование
type UseCase struct {
	applicationRepo ApplicationRepository
	profileRepo     ProfileRepository
	interviewRepo   InterviewRepository
	slotService     SlotService
	txManager       TransactionManager
	dispatcher      EventDispatcher
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	applicationRepo ApplicationRepository,
	profileRepo ProfileRepository,
	interviewRepo InterviewRepository,
	slotService SlotService,
	txManager TransactionManager,
	dispatcher EventDispatcher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		applicationRepo: applicationRepo,
		profileRepo:     profileRepo,
		interviewRepo:   interviewRepo,
		slotService:     slotService,
		txManager:       txManager,
		dispatcher:      dispatcher,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case записи на собеседование.
// Проверка слота и вставка выполняются в сериализуемой транзакции под advisory lock компании
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.InterviewResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "ScheduleInterview",
		attribute.Int64("application.id", req.ApplicationID),
		attribute.String("scheduled_at", req.ScheduledAt.Format(time.RFC3339)),
	)
	defer span.End()

	uc.logger.Info("ScheduleInterview: user=%d, application=%d, scheduledAt=%s",
		req.UserID, req.ApplicationID, req.ScheduledAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleInterview: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Профиль кандидата
	candidate, err := uc.profileRepo.GetCandidateByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrCandidateNotFound) {
			uc.logger.Warn("ScheduleInterview: user=%d has no candidate profile", req.UserID)
			return nil, ErrProfileNotFound
		}
		uc.logger.Error("ScheduleInterview: failed to get candidate profile for user=%d: %v", req.UserID, err)
		return nil, uc.fail(span, fmt.Errorf("%w: failed to get candidate profile: %v", ErrInternal, err))
	}

	// 4. Отклик и компания
	application, err := uc.applicationRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		if errors.Is(err, applicationRepo.ErrApplicationNotFound) {
			uc.logger.Warn("ScheduleInterview: application id=%d not found", req.ApplicationID)
			return nil, ErrApplicationNotFound
		}
		uc.logger.Error("ScheduleInterview: failed to get application id=%d: %v", req.ApplicationID, err)
		return nil, uc.fail(span, fmt.Errorf("%w: failed to get application: %v", ErrInternal, err))
	}

	// 5. Отклик должен принадлежать кандидату
	if application.CandidateProfileID != candidate.ID {
		uc.logger.Warn("ScheduleInterview: application id=%d does not belong to candidate profile=%d",
			req.ApplicationID, candidate.ID)
		return nil, ErrAccessDenied
	}

	span.SetAttributes(attribute.Int64("company.id", application.CompanyID))

	// 6. Минимальный срок записи
	if req.ScheduledAt.Before(uc.slotService.EarliestBookable(now)) {
		uc.logger.Warn("ScheduleInterview: scheduledAt=%s is earlier than allowed",
			req.ScheduledAt.Format(time.RFC3339))
		uc.metrics.RecordInterviewOperation(operationName, "rejected")
		return nil, ErrSlotNotAvailable
	}

	var result *domain.Interview

	// 7. Проверка слота и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Сериализуем запись на слоты одной компании
		if err := uc.interviewRepo.LockCompany(txCtx, application.CompanyID); err != nil {
			return fmt.Errorf("%w: failed to lock company: %w", ErrInternal, err)
		}

		// 7.2. Слот должен быть свободен
		free, err := uc.slotService.IsSlotFree(txCtx, application.CompanyID, req.ScheduledAt)
		if err != nil {
			return fmt.Errorf("%w: failed to check slot: %w", ErrInternal, err)
		}
		if !free {
			return ErrSlotNotAvailable
		}

		// 7.3. Создаем собеседование
		interview := &domain.Interview{
			ApplicationID:      application.ID,
			CompanyID:          application.CompanyID,
			CandidateProfileID: application.CandidateProfileID,
			ScheduledAt:        req.ScheduledAt,
			EndsAt:             req.ScheduledAt.Add(uc.slotService.Duration()),
			Status:             domain.InterviewStatusScheduled,
			RoomID:             domain.GenerateRoomID(),
			CompanyUserID:      application.CompanyUserID,
			CandidateUserID:    application.CandidateUserID,
		}

		created, err := uc.interviewRepo.Create(txCtx, interview)
		if err != nil {
			if isSlotConflict(err) {
				return err
			}
			return fmt.Errorf("%w: failed to create interview: %w", ErrInternal, err)
		}

		// 7.4. Отклик переходит в статус Interview
		if err := uc.applicationRepo.UpdateStatus(txCtx, application.ID, domain.ApplicationStatusInterview); err != nil {
			return fmt.Errorf("%w: failed to update application status: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable):
			uc.logger.Warn("ScheduleInterview: slot %s is not available for company=%d",
				req.ScheduledAt.Format(time.RFC3339), application.CompanyID)
			uc.metrics.RecordInterviewOperation(operationName, "conflict")
			return nil, ErrSlotNotAvailable
		case isSlotConflict(err):
			uc.logger.Warn("ScheduleInterview: lost race for slot %s of company=%d: %v",
				req.ScheduledAt.Format(time.RFC3339), application.CompanyID, err)
			uc.metrics.RecordInterviewOperation(operationName, "conflict")
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("ScheduleInterview: transaction failed: %v", err)
		uc.metrics.RecordInterviewOperation(operationName, "error")
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, uc.fail(span, err)
	}

	uc.logger.Info("ScheduleInterview: created interview id=%d, room=%s", result.ID, result.RoomID)
	uc.metrics.RecordInterviewOperation(operationName, "success")

	// 8. Уведомления после коммита
	uc.dispatcher.Dispatch(domain.Event{
		Type:             domain.EventInterviewScheduled,
		CompanyID:        result.CompanyID,
		InterviewID:      result.ID,
		RecipientUserIDs: []int64{result.CompanyUserID, result.CandidateUserID},
		Status:           result.Status,
		SlotStart:        ptr.Ptr(result.ScheduledAt),
		SlotEnd:          ptr.Ptr(result.EndsAt),
		OccurredAt:       now,
	})
	uc.dispatcher.Dispatch(domain.Event{
		Type:             domain.EventSlotBooked,
		CompanyID:        result.CompanyID,
		InterviewID:      result.ID,
		RecipientUserIDs: []int64{result.CompanyUserID},
		SlotStart:        ptr.Ptr(result.ScheduledAt),
		SlotEnd:          ptr.Ptr(result.EndsAt),
		OccurredAt:       now,
	})

	return models.FromDomainInterview(result), nil
}

func (uc *UseCase) fail(span trace.Span, err error) error {
	span.SetStatus(codes.Error, err.Error())
	return err
}
