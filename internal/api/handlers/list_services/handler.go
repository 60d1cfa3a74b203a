package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const msgMissingTenantID = "отсутствует ID тенанта"

// ServiceResponse HTTP модель услуги
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"active"`
}

// ListServicesResponse HTTP response model
type ListServicesResponse struct {
	Services []ServiceResponse `json:"services"`
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

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /services - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	// Владелец видит и деактивированные услуги
	onlyActive := r.URL.Query().Get("onlyActive") == "true"

	services, err := h.service.List(r.Context(), tenantID, onlyActive)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: tenant_id=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := ListServicesResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, svc := range services {
		resp.Services = append(resp.Services, fromDomain(svc))
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromDomain(svc *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Active:          svc.Active,
	}
}
