package slots

import "errors"

var (
	// ErrInvalidRange возвращается при неположительном количестве дней
	ErrInvalidRange = errors.New("slots: invalid day range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)
