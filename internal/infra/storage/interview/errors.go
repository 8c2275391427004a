package interview

import "errors"

var (
	// ErrInterviewNotFound возвращается, когда собеседование не найдено
	ErrInterviewNotFound = errors.New("interview.repository: interview not found")

	// ErrSlotTaken у компании уже есть активное собеседование на это время (ux_interviews_company_slot_active)
	ErrSlotTaken = errors.New("interview.repository: slot already taken")

	// ErrDuplicateRoomID сгенерированный room_id уже существует (ux_interviews_room_id)
	ErrDuplicateRoomID = errors.New("interview.repository: duplicate room id")

	// ErrConcurrentUpdate статус собеседования изменился между чтением и записью
	ErrConcurrentUpdate = errors.New("interview.repository: interview was modified concurrently")

	// ErrNotInTransaction advisory lock имеет смысл только внутри транзакции
	ErrNotInTransaction = errors.New("interview.repository: transaction required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("interview.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("interview.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("interview.repository: failed to scan row")
)
