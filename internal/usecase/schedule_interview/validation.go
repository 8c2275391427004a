package schedule_interview

import (
	"errors"
	"fmt"

	interviewRepo "github.com/Am1ne12/JobConnect/internal/infra/storage/interview"
	"github.com/Am1ne12/JobConnect/pkg/pgerr"
	"github.com/Am1ne12/JobConnect/pkg/txmanager"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ApplicationID <= 0 {
		return fmt.Errorf("%w: applicationID must be positive", ErrInvalidInput)
	}

	if req.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}

	return nil
}

// isSlotConflict ошибки гонки за слот: уникальный индекс, сериализация, параллельное изменение
func isSlotConflict(err error) bool {
	return errors.Is(err, interviewRepo.ErrSlotTaken) ||
		errors.Is(err, interviewRepo.ErrConcurrentUpdate) ||
		errors.Is(err, txmanager.ErrSerialization) ||
		pgerr.IsRetryable(err)
}
