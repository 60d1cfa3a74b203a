package remove_closed_date

import (
	"context"
	"time"
)

type ScheduleService interface {
	RemoveClosedDate(ctx context.Context, tenantID string, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
