package get_dashboard_stats

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/accounts"
)

type AccountsService interface {
	GetDashboardStats(ctx context.Context, tenantID string) (*accounts.DashboardStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
