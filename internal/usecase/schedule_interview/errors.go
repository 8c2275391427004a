package schedule_interview

import "errors"

var (
	// ErrApplicationNotFound возвращается, когда отклик не найден
	ErrApplicationNotFound = errors.New("schedule_interview: application not found")

	// ErrProfileNotFound возвращается, когда у пользователя нет профиля кандидата
	ErrProfileNotFound = errors.New("schedule_interview: candidate profile not found")

	// ErrAccessDenied возвращается, когда отклик принадлежит другому кандидату
	ErrAccessDenied = errors.New("schedule_interview: access denied")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят, заблокирован или не на сетке слотов
	ErrSlotNotAvailable = errors.New("schedule_interview: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_interview: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_interview: internal error")
)
