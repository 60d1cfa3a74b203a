package tenants

import "errors"

var (
	// ErrTenantNotFound возвращается, когда публичный идентификатор
	// не совпал ни с псевдонимом, ни с ID аккаунта
	ErrTenantNotFound = errors.New("tenants: tenant not found")

	// ErrInvalidSlug возвращается, когда псевдоним нарушает правила:
	// минимум 3 символа, только строчные латинские буквы, цифры и дефис
	ErrInvalidSlug = errors.New("tenants: invalid slug")

	// ErrSlugTaken возвращается, когда псевдоним занят другим аккаунтом
	ErrSlugTaken = errors.New("tenants: slug already taken")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tenants: internal error")
)
