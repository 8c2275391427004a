package cancel_interview

import "errors"

var (
	// ErrInterviewNotFound возвращается, когда собеседование не найдено
	ErrInterviewNotFound = errors.New("cancel_interview: interview not found")

	// ErrAccessDenied возвращается, когда пользователь не участник собеседования
	ErrAccessDenied = errors.New("cancel_interview: access denied")

	// ErrCannotCancel возвращается для собеседований не в статусе Scheduled / InWaitingRoom
	ErrCannotCancel = errors.New("cancel_interview: interview cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_interview: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_interview: internal error")
)
