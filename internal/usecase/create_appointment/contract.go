package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CatalogRepository интерфейс репозитория услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetHours(ctx context.Context, tenantID string, dayOfWeek int) (*domain.BusinessHours, error)
	IsClosedDate(ctx context.Context, tenantID string, date time.Time) (bool, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListByTenantAndDate(ctx context.Context, tenantID string, date time.Time) ([]*domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
