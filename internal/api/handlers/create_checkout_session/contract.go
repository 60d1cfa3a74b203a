package create_checkout_session

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/billing"
)

type TenantProvider interface {
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
}

type BillingClient interface {
	CreateCheckoutSession(ctx context.Context, tenant *domain.Tenant) (*billing.CheckoutSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
