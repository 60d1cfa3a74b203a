package schedule

import "errors"

var (
	// ErrHoursNotFound возвращается, когда строка расписания не найдена
	ErrHoursNotFound = errors.New("schedule.repository: business hours not found")

	// ErrDateAlreadyClosed возвращается, когда дата уже помечена закрытой
	ErrDateAlreadyClosed = errors.New("schedule.repository: date already marked as closed")

	// ErrClosedDateNotFound возвращается, когда закрытая дата не найдена
	ErrClosedDateNotFound = errors.New("schedule.repository: closed date not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
