package interviews

import "errors"

var (
	// ErrInterviewNotFound возвращается, когда собеседование не найдено
	ErrInterviewNotFound = errors.New("interview not found")

	// ErrProfileNotFound у пользователя нет профиля компании / кандидата
	ErrProfileNotFound = errors.New("profile not found")

	// ErrAccessDenied пользователь не является стороной собеседования
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidRole неизвестная роль пользователя
	ErrInvalidRole = errors.New("invalid user role")

	// ErrInvalidTransition переход статуса запрещён
	ErrInvalidTransition = errors.New("invalid interview status transition")

	// ErrTooEarlyToJoin комната ещё не открыта
	ErrTooEarlyToJoin = errors.New("too early to join the interview")

	// ErrInterviewOver собеседование уже закончилось
	ErrInterviewOver = errors.New("interview is over")

	// ErrInterviewNotActive собеседование отменено, перенесено или завершено
	ErrInterviewNotActive = errors.New("interview is not active")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("interviews: internal error")
)
