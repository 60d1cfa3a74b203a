package billing_webhook

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/integrations/billing"
)

type BillingClient interface {
	ParseWebhookEvent(payload []byte, signatureHeader string) (*billing.PaymentCompleted, error)
}

type AccountsService interface {
	ActivateSubscription(ctx context.Context, tenantID, paymentID string, amount float64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
