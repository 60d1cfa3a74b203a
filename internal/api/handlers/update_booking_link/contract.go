package update_booking_link

import "context"

type TenantsService interface {
	UpdateSlug(ctx context.Context, tenantID, raw string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
