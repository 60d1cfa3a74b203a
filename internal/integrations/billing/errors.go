package billing

import "errors"

var (
	// ErrNotConfigured возвращается, когда биллинг не настроен
	ErrNotConfigured = errors.New("billing: stripe is not configured")

	// ErrCreateSession возвращается при ошибке создания checkout-сессии
	ErrCreateSession = errors.New("billing: failed to create checkout session")

	// ErrInvalidSignature возвращается, когда подпись вебхука не прошла проверку
	ErrInvalidSignature = errors.New("billing: invalid webhook signature")

	// ErrInvalidPayload возвращается, когда тело события не удалось разобрать
	ErrInvalidPayload = errors.New("billing: invalid event payload")
)
