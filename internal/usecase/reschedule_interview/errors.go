package reschedule_interview

import "errors"

var (
	// ErrInterviewNotFound возвращается, когда собеседование не найдено
	ErrInterviewNotFound = errors.New("reschedule_interview: interview not found")

	// ErrAccessDenied возвращается, когда пользователь не участник собеседования
	ErrAccessDenied = errors.New("reschedule_interview: access denied")

	// ErrCannotReschedule возвращается для собеседований не в статусе Scheduled / InWaitingRoom
	ErrCannotReschedule = errors.New("reschedule_interview: interview cannot be rescheduled")

	// ErrSlotNotAvailable возвращается, когда новый слот занят, заблокирован или не на сетке слотов
	ErrSlotNotAvailable = errors.New("reschedule_interview: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_interview: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_interview: internal error")
)
