package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Repository интерфейс репозитория расписания
type Repository interface {
	ListHours(ctx context.Context, tenantID string) ([]*domain.BusinessHours, error)
	UpdateHours(ctx context.Context, h *domain.BusinessHours) error
	ListClosedDates(ctx context.Context, tenantID string) ([]*domain.ClosedDate, error)
	AddClosedDate(ctx context.Context, tenantID string, date time.Time) error
	RemoveClosedDate(ctx context.Context, tenantID string, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
