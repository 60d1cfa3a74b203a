package list_closed_dates

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type ScheduleService interface {
	ListClosedDates(ctx context.Context, tenantID string) ([]*domain.ClosedDate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
