package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingTenantID    = "отсутствует ID тенанта"
	msgInvalidInput       = "некорректные данные услуги"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
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

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("POST /services - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	svc, err := h.service.Create(r.Context(), tenantID, catalog.CreateServiceRequest{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid input: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /services - Failed to create service: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%s, tenant_id=%s", svc.ID, tenantID)
	handlers.RespondJSON(w, http.StatusCreated, &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Active:          svc.Active,
	})
}
