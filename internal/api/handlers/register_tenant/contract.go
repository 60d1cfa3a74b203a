package register_tenant

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/accounts"
)

type AccountsService interface {
	Register(ctx context.Context, req *accounts.RegisterRequest) (*accounts.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
