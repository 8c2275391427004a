package realtime

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("realtime client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от gateway
	ErrInvalidResponse = errors.New("realtime client: invalid response")

	// ErrUnavailable gateway недоступен (сеть, timeout, 5xx)
	ErrUnavailable = errors.New("realtime client: gateway unavailable")
)
