package create_public_appointment

import (
	"context"

	createPublicAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_public_appointment"
)

type CreatePublicAppointmentUseCase interface {
	Execute(ctx context.Context, req *createPublicAppointment.Request) (*createPublicAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
