package tenant

import "errors"

var (
	// ErrTenantNotFound возвращается, когда аккаунт не найден
	ErrTenantNotFound = errors.New("tenant.repository: tenant not found")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("tenant.repository: email already registered")

	// ErrSlugTaken возвращается, когда псевдоним уже занят другим аккаунтом
	ErrSlugTaken = errors.New("tenant.repository: slug already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tenant.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tenant.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tenant.repository: failed to scan row")
)
