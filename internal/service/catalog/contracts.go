package catalog

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Repository интерфейс репозитория каталога услуг
type Repository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	ListByTenant(ctx context.Context, tenantID string, onlyActive bool) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Deactivate(ctx context.Context, tenantID, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
