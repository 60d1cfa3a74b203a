package tenants

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// TenantRepository интерфейс репозитория аккаунтов
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	UpdateSlug(ctx context.Context, id, slug string) error
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	ListByTenant(ctx context.Context, tenantID string, onlyActive bool) ([]*domain.Service, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	ListHours(ctx context.Context, tenantID string) ([]*domain.BusinessHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
