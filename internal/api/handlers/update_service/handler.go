package update_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingTenantID    = "отсутствует ID тенанта"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidInput       = "некорректные данные услуги"
)

// UpdateServiceRequest HTTP request model, nil-поля не изменяются
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"active"`
}

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

// Handle PUT /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("PUT /services/{id} - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	serviceID := mux.Vars(r)["serviceId"]

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	svc, err := h.service.Update(r.Context(), tenantID, serviceID, catalog.UpdateServiceRequest{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: service_id=%s, tenant_id=%s", serviceID, tenantID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Invalid input: service_id=%s, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: service_id=%s, tenant_id=%s", serviceID, tenantID)
	handlers.RespondJSON(w, http.StatusOK, &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Active:          svc.Active,
	})
}
