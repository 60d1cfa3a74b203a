package get_public_profile

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/tenants"
)

type TenantsService interface {
	GetPublicProfile(ctx context.Context, segment string) (*tenants.PublicProfile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
