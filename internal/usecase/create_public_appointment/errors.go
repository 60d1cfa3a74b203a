package create_public_appointment

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден ни по slug, ни по id
	ErrTenantNotFound = errors.New("create_public_appointment: tenant not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена, деактивирована
	// или принадлежит другому тенанту
	ErrServiceNotFound = errors.New("create_public_appointment: service not found")

	// ErrTenantClosed возвращается, когда тенант закрыт в указанную дату
	ErrTenantClosed = errors.New("create_public_appointment: tenant is closed on this date")

	// ErrOutsideBusinessHours возвращается, когда интервал записи выходит за часы работы
	ErrOutsideBusinessHours = errors.New("create_public_appointment: time is outside business hours")

	// ErrSlotConflict возвращается, когда интервал записи пересекается с существующей
	ErrSlotConflict = errors.New("create_public_appointment: slot is already taken")

	// ErrAccessExpired возвращается, когда доступ тенанта истёк,
	// а политика требует активного доступа для публичной записи
	ErrAccessExpired = errors.New("create_public_appointment: tenant access expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_public_appointment: invalid input data")

	// ErrInvalidRecord возвращается, когда у сохранённой записи
	// нечитаемое время начала: занятость по такой записи невычислима
	ErrInvalidRecord = errors.New("create_public_appointment: invalid appointment record")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_public_appointment: internal error")
)
