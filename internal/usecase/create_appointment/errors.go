package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена, деактивирована
	// или принадлежит другому тенанту
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrTenantClosed возвращается, когда тенант закрыт в указанную дату
	ErrTenantClosed = errors.New("create_appointment: tenant is closed on this date")

	// ErrOutsideBusinessHours возвращается, когда интервал записи выходит за часы работы
	ErrOutsideBusinessHours = errors.New("create_appointment: time is outside business hours")

	// ErrSlotConflict возвращается, когда интервал записи пересекается с существующей
	ErrSlotConflict = errors.New("create_appointment: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidRecord возвращается, когда у сохранённой записи
	// нечитаемое время начала: занятость по такой записи невычислима
	ErrInvalidRecord = errors.New("create_appointment: invalid appointment record")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
