package get_subscription_status

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/accounts"
)

type AccountsService interface {
	GetSubscriptionStatus(ctx context.Context, tenantID string) (*accounts.SubscriptionStatus, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
