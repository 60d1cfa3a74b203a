package get_business_hours

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type ScheduleService interface {
	ListHours(ctx context.Context, tenantID string) ([]*domain.BusinessHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
