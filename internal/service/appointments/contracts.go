package appointments

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Repository интерфейс репозитория записей
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
