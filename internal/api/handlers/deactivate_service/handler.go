package deactivate_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

const (
	msgMissingTenantID = "отсутствует ID тенанта"
	msgServiceNotFound = "услуга не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/services/{serviceId}
// Услуга деактивируется, а не удаляется: история записей остаётся читаемой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /services/{id} - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	serviceID := mux.Vars(r)["serviceId"]

	if err := h.service.Deactivate(r.Context(), tenantID, serviceID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: service_id=%s, tenant_id=%s", serviceID, tenantID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("DELETE /services/{id} - Failed to deactivate service: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deactivated: service_id=%s, tenant_id=%s", serviceID, tenantID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
