package reschedule_interview

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Am1ne12/JobConnect/internal/domain"
	interviewRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/interview"
	"github.com/Am1ne12/JobConnect/pkg/pgerr"
	"github.com/Am1ne12/JobConnect/pkg/txmanager"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.InterviewID <= 0 {
		return fmt.Errorf("%w: interviewID must be positive", ErrInvalidInput)
	}

	if req.NewStart.IsZero() {
		return fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}

	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return nil
}

// resolveReason причина из запроса или значение по умолчанию
func resolveReason(reason *string) string {
	if reason == nil || strings.TrimSpace(*reason) == "" {
		return domain.DefaultRescheduleReason
	}
	return strings.TrimSpace(*reason)
}

// isSlotConflict ошибки гонки за слот: уникальный индекс, сериализация, параллельное изменение
func isSlotConflict(err error) bool {
	return errors.Is(err, interviewRepo.ErrSlotTaken) ||
		errors.Is(err, interviewRepo.ErrConcurrentUpdate) ||
		errors.Is(err, txmanager.ErrSerialization) ||
		pgerr.IsRetryable(err)
}
