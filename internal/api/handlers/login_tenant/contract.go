package login_tenant

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/accounts"
)

type AccountsService interface {
	Login(ctx context.Context, email, password string) (*accounts.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
