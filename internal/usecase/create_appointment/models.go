package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи владельцем
type Request struct {
	TenantID    string           // ID тенанта из авторизационного контекста
	ServiceID   string           // ID услуги
	ClientName  string           // Имя клиента
	ClientPhone string           // Телефон клиента
	ClientEmail string           // Email клиента (опционально)
	Date        time.Time        // Дата записи (без времени)
	StartTime   types.TimeString // Время начала записи
}

// Response модель ответа с созданной записью
type Response struct {
	ID              string
	TenantID        string
	ServiceID       string
	ServiceName     string
	DurationMinutes int
	ClientName      string
	ClientPhone     string
	ClientEmail     string
	Date            time.Time
	StartTime       types.TimeString
	Status          string
	CreatedAt       time.Time
}
