package reschedule_interview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Am1ne12/JobConnect/internal/domain"
	interviewRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/interview"
	"github.com/Am1ne12/JobConnect/internal/service/interviews/models"
	"github.com/Am1ne12/JobConnect/pkg/ptr"
	"github.com/Am1ne12/JobConnect/pkg/tracing"
)

const operationName = "reschedule"

// UseCase use case для переноса собеседования на другой слот
type UseCase struct {
	interviewRepo InterviewRepository
	slotService   SlotService
	txManager     TransactionManager
	dispatcher    EventDispatcher
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	interviewRepo InterviewRepository,
	slotService SlotService,
	txManager TransactionManager,
	dispatcher EventDispatcher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		interviewRepo: interviewRepo,
		slotService:   slotService,
		txManager:     txManager,
		dispatcher:    dispatcher,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute переносит собеседование: старое получает статус Rescheduled,
// создается новое Scheduled со ссылкой на старое. Статус отклика не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.InterviewResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "RescheduleInterview",
		attribute.Int64("interview.id", req.InterviewID),
		attribute.String("scheduled_at", req.NewStart.Format(time.RFC3339)),
	)
	defer span.End()

	uc.logger.Info("RescheduleInterview: user=%d, interview=%d, newStart=%s",
		req.UserID, req.InterviewID, req.NewStart.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleInterview: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	reason := resolveReason(req.Reason)

	// 2. Собеседование, права и статус
	old, err := uc.load(ctx, req)
	if err != nil {
		if errors.Is(err, ErrInternal) {
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}

	// 3. Минимальный срок записи
	if req.NewStart.Before(uc.slotService.EarliestBookable(now)) {
		uc.logger.Warn("RescheduleInterview: newStart=%s is earlier than allowed", req.NewStart.Format(time.RFC3339))
		uc.metrics.RecordInterviewOperation(operationName, "rejected")
		return nil, ErrSlotNotAvailable
	}

	var result *domain.Interview

	// 4. Проверка нового слота, пометка старого и вставка нового в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Сериализуем запись на слоты одной компании
		if err := uc.interviewRepo.LockCompany(txCtx, old.CompanyID); err != nil {
			return fmt.Errorf("%w: failed to lock company: %w", ErrInternal, err)
		}

		// 4.2. Перечитываем собеседование под блокировкой
		current, err := uc.interviewRepo.GetByID(txCtx, old.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload interview: %w", ErrInternal, err)
		}
		if !current.CanBeRescheduled() {
			return ErrCannotReschedule
		}

		// 4.3. Старое собеседование ещё занимает свой слот
		free, err := uc.slotService.IsSlotFree(txCtx, current.CompanyID, req.NewStart)
		if err != nil {
			return fmt.Errorf("%w: failed to check slot: %w", ErrInternal, err)
		}
		if !free {
			return ErrSlotNotAvailable
		}

		// 4.4. Старое собеседование переходит в Rescheduled
		if err := uc.interviewRepo.MarkRescheduled(txCtx, current.ID, current.Status, reason); err != nil {
			if isSlotConflict(err) {
				return err
			}
			return fmt.Errorf("%w: failed to mark interview rescheduled: %w", ErrInternal, err)
		}

		// 4.5. Новое собеседование
		interview := &domain.Interview{
			ApplicationID:      current.ApplicationID,
			CompanyID:          current.CompanyID,
			CandidateProfileID: current.CandidateProfileID,
			ScheduledAt:        req.NewStart,
			EndsAt:             req.NewStart.Add(uc.slotService.Duration()),
			Status:             domain.InterviewStatusScheduled,
			RoomID:             domain.GenerateRoomID(),
			RescheduledFromID:  ptr.Ptr(current.ID),
			CompanyUserID:      current.CompanyUserID,
			CandidateUserID:    current.CandidateUserID,
		}

		created, err := uc.interviewRepo.Create(txCtx, interview)
		if err != nil {
			if isSlotConflict(err) {
				return err
			}
			return fmt.Errorf("%w: failed to create interview: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrCannotReschedule):
			uc.logger.Warn("RescheduleInterview: interview id=%d changed status concurrently", req.InterviewID)
			uc.metrics.RecordInterviewOperation(operationName, "rejected")
			return nil, ErrCannotReschedule
		case errors.Is(err, ErrSlotNotAvailable), isSlotConflict(err):
			uc.logger.Warn("RescheduleInterview: slot %s is not available for company=%d: %v",
				req.NewStart.Format(time.RFC3339), old.CompanyID, err)
			uc.metrics.RecordInterviewOperation(operationName, "conflict")
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("RescheduleInterview: transaction failed: %v", err)
		uc.metrics.RecordInterviewOperation(operationName, "error")
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	uc.logger.Info("RescheduleInterview: interview id=%d moved to id=%d at %s",
		old.ID, result.ID, result.ScheduledAt.Format(time.RFC3339))
	uc.metrics.RecordInterviewOperation(operationName, "success")

	// 5. Уведомления после коммита
	uc.dispatcher.Dispatch(domain.Event{
		Type:             domain.EventInterviewRescheduled,
		CompanyID:        result.CompanyID,
		InterviewID:      result.ID,
		RecipientUserIDs: []int64{result.CompanyUserID, result.CandidateUserID},
		Status:           result.Status,
		SlotStart:        ptr.Ptr(result.ScheduledAt),
		SlotEnd:          ptr.Ptr(result.EndsAt),
		Reason:           ptr.Ptr(reason),
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

func (uc *UseCase) load(ctx context.Context, req *Request) (*domain.Interview, error) {
	interview, err := uc.interviewRepo.GetByID(ctx, req.InterviewID)
	if err != nil {
		if errors.Is(err, interviewRepo.ErrInterviewNotFound) {
			uc.logger.Warn("RescheduleInterview: interview id=%d not found", req.InterviewID)
			return nil, ErrInterviewNotFound
		}
		uc.logger.Error("RescheduleInterview: failed to get interview id=%d: %v", req.InterviewID, err)
		return nil, fmt.Errorf("%w: failed to get interview: %v", ErrInternal, err)
	}

	if !interview.IsParty(req.UserID) {
		uc.logger.Warn("RescheduleInterview: access denied for user=%d to interview id=%d", req.UserID, req.InterviewID)
		return nil, ErrAccessDenied
	}

	if !interview.CanBeRescheduled() {
		uc.logger.Warn("RescheduleInterview: interview id=%d cannot be rescheduled, status=%s",
			req.InterviewID, interview.Status)
		return nil, ErrCannotReschedule
	}

	return interview, nil
}
