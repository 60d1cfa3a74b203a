package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, когда почтовый клиент отключен конфигурацией
	ErrNotConfigured = errors.New("mailer: client is not configured")

	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("mailer: failed to send email")
)
