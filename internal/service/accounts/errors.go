package accounts

import "errors"

var (
	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("accounts: email already registered")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("accounts: invalid credentials")

	// ErrTenantNotFound возвращается, когда аккаунт не найден
	ErrTenantNotFound = errors.New("accounts: tenant not found")

	// ErrAccessExpired возвращается, когда триал и подписка истекли
	ErrAccessExpired = errors.New("accounts: trial or subscription expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("accounts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("accounts: internal error")
)
