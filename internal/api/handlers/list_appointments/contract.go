package list_appointments

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type AppointmentsService interface {
	List(ctx context.Context, tenantID string) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
