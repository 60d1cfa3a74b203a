package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValidStatus проверяет, что строка является допустимым статусом записи
func IsValidStatus(s string) bool {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Appointment запись клиента на услугу.
// Название и длительность услуги фиксируются в момент бронирования,
// чтобы последующие правки каталога не искажали историю.
type Appointment struct {
	ID       string
	TenantID string

	ServiceID       string
	ServiceName     string
	DurationMinutes int

	ClientName  string
	ClientPhone string
	ClientEmail string

	Date      time.Time
	StartTime types.TimeString
	Status    AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись занимает слот.
// Занимают слот и pending, и confirmed записи.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled возвращает true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// EffectiveDuration возвращает зафиксированную длительность записи.
// Для легаси-записей без длительности используется значение по умолчанию.
func (a *Appointment) EffectiveDuration() int {
	if a.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return a.DurationMinutes
}
