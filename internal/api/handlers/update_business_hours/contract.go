package update_business_hours

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
)

type ScheduleService interface {
	UpdateHours(ctx context.Context, tenantID string, days []schedule.DayHours) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
