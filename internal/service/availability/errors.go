package availability

import "errors"

var (
	// ErrCompanyNotFound у пользователя нет профиля компании
	ErrCompanyNotFound = errors.New("company not found")

	// ErrInvalidTemplate некорректное время, end <= start или повтор дня недели
	ErrInvalidTemplate = errors.New("invalid availability template")

	// ErrAlreadyInitialized у компании уже есть расписание
	ErrAlreadyInitialized = errors.New("availability already initialized")

	// ErrInvalidBlockedPeriod конец периода не позже начала или слишком длинная причина
	ErrInvalidBlockedPeriod = errors.New("invalid blocked period")

	// ErrBlockedPeriodNotFound возвращается, когда период не найден
	ErrBlockedPeriodNotFound = errors.New("blocked period not found")

	// ErrAccessDenied период принадлежит другой компании
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
