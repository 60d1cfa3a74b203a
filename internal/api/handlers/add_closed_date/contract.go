package add_closed_date

import (
	"context"
	"time"
)

type ScheduleService interface {
	AddClosedDate(ctx context.Context, tenantID string, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
