package accounts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// TenantRepository интерфейс репозитория аккаунтов
type TenantRepository interface {
	Create(ctx context.Context, t *domain.Tenant) error
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetByEmail(ctx context.Context, email string) (*domain.Tenant, error)
	ActivateSubscription(ctx context.Context, id string, until time.Time, paymentID string) error
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	SeedDefaultHours(ctx context.Context, tenantID string) error
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	CountActive(ctx context.Context, tenantID string) (int, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Count(ctx context.Context, tenantID string, status *domain.AppointmentStatus) (int, error)
}

// Notifier интерфейс почтовых уведомлений
type Notifier interface {
	SendSubscriptionActivated(ctx context.Context, ownerEmail, businessName string, amount float64, until time.Time) error
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
