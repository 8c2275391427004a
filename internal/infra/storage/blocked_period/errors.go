package blocked_period

import "errors"

var (
	// ErrBlockedPeriodNotFound возвращается, когда период не найден
	ErrBlockedPeriodNotFound = errors.New("blocked_period.repository: blocked period not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blocked_period.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blocked_period.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blocked_period.repository: failed to scan row")
)
