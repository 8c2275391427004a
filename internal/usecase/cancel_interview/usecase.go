package cancel_interview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Am1ne12/JobConnect/internal/domain"
	interviewRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/interview"
	"github.com/Am1ne12/JobConnect/pkg/ptr"
	"github.com/Am1ne12/JobConnect/pkg/tracing"
)

const operationName = "cancel"

// UseCase use case для отмены собеседования.
// Строка не удаляется: статус Cancelled, причина и время отмены сохраняются
type UseCase struct {
	interviewRepo InterviewRepository
	txManager     TransactionManager
	dispatcher    EventDispatcher
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	interviewRepo InterviewRepository,
	txManager TransactionManager,
	dispatcher EventDispatcher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		interviewRepo: interviewRepo,
		txManager:     txManager,
		dispatcher:    dispatcher,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case отмены собеседования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := tracing.StartSpan(ctx, "CancelInterview", attribute.Int64("interview.id", req.InterviewID))
	defer span.End()

	uc.logger.Info("CancelInterview: user=%d, interview=%d", req.UserID, req.InterviewID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelInterview: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	reason := strings.TrimSpace(req.Reason)

	var result *Response

	// 2. Чтение под блокировкой строки и отмена
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		interview, err := uc.interviewRepo.GetByID(txCtx, req.InterviewID)
		if err != nil {
			if errors.Is(err, interviewRepo.ErrInterviewNotFound) {
				return ErrInterviewNotFound
			}
			return fmt.Errorf("%w: failed to get interview: %v", ErrInternal, err)
		}

		if !interview.IsParty(req.UserID) {
			return ErrAccessDenied
		}

		if !interview.CanBeCancelled() {
			return fmt.Errorf("%w: status=%s", ErrCannotCancel, interview.Status)
		}

		if err := uc.interviewRepo.Cancel(txCtx, interview.ID, interview.Status, reason, now); err != nil {
			if errors.Is(err, interviewRepo.ErrConcurrentUpdate) {
				return fmt.Errorf("%w: %v", ErrCannotCancel, err)
			}
			return fmt.Errorf("%w: failed to cancel interview: %v", ErrInternal, err)
		}

		cancelledBy := domain.RoleCandidate
		if req.UserID == interview.CompanyUserID {
			cancelledBy = domain.RoleCompany
		}

		result = &Response{
			InterviewID:        interview.ID,
			ApplicationID:      interview.ApplicationID,
			CompanyID:          interview.CompanyID,
			CompanyUserID:      interview.CompanyUserID,
			CandidateProfileID: interview.CandidateProfileID,
			CandidateUserID:    interview.CandidateUserID,
			ScheduledAt:        interview.ScheduledAt,
			EndsAt:             interview.EndsAt,
			Reason:             reason,
			CancelledBy:        string(cancelledBy),
			CancelledAt:        now,
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrInterviewNotFound):
			uc.logger.Warn("CancelInterview: interview id=%d not found", req.InterviewID)
		case errors.Is(err, ErrAccessDenied):
			uc.logger.Warn("CancelInterview: access denied for user=%d to interview id=%d", req.UserID, req.InterviewID)
		case errors.Is(err, ErrCannotCancel):
			uc.logger.Warn("CancelInterview: interview id=%d cannot be cancelled: %v", req.InterviewID, err)
			uc.metrics.RecordInterviewOperation(operationName, "rejected")
		default:
			uc.logger.Error("CancelInterview: transaction failed: %v", err)
			uc.metrics.RecordInterviewOperation(operationName, "error")
			span.SetStatus(codes.Error, err.Error())
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	uc.logger.Info("CancelInterview: interview id=%d cancelled by %s", result.InterviewID, result.CancelledBy)
	uc.metrics.RecordInterviewOperation(operationName, "success")

	// 3. Уведомление обеим сторонам после коммита
	uc.dispatcher.Dispatch(domain.Event{
		Type:             domain.EventInterviewCancelled,
		CompanyID:        result.CompanyID,
		InterviewID:      result.InterviewID,
		RecipientUserIDs: []int64{result.CompanyUserID, result.CandidateUserID},
		Status:           domain.InterviewStatusCancelled,
		SlotStart:        ptr.Ptr(result.ScheduledAt),
		SlotEnd:          ptr.Ptr(result.EndsAt),
		Reason:           ptr.Ptr(result.Reason),
		OccurredAt:       now,
	})

	return result, nil
}
