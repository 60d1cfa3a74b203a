package update_service

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

type CatalogService interface {
	Update(ctx context.Context, tenantID, serviceID string, req catalog.UpdateServiceRequest) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
