package get_available_slots

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден ни по slug, ни по id
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена, деактивирована
	// или принадлежит другому тенанту
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidRecord возвращается, когда у сохранённой записи
	// нечитаемое время начала: занятость по такой записи невычислима
	ErrInvalidRecord = errors.New("invalid appointment record")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
