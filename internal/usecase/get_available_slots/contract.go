package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// TenantResolver интерфейс резолвера публичного сегмента пути в тенанта
type TenantResolver interface {
	Resolve(ctx context.Context, segment string) (*domain.Tenant, error)
}

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
	// ListByTenantAndDate получает все активные записи тенанта на конкретную дату
	ListByTenantAndDate(ctx context.Context, tenantID string, date time.Time) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
