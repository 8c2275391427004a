package availability

import "errors"

var (
	// ErrDuplicateWeekday у компании уже есть запись на этот день недели (ux_company_availabilities_company_day)
	ErrDuplicateWeekday = errors.New("availability.repository: duplicate weekday for company")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
