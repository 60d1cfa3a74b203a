package get_business_hours

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const msgMissingTenantID = "отсутствует ID тенанта"

// DayHoursResponse HTTP модель часов работы одного дня
type DayHoursResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
}

// BusinessHoursResponse HTTP response model
type BusinessHoursResponse struct {
	Hours []DayHoursResponse `json:"hours"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /schedule/hours - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	hours, err := h.service.ListHours(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /schedule/hours - Failed to list hours: tenant_id=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := BusinessHoursResponse{Hours: make([]DayHoursResponse, 0, len(hours))}
	for _, day := range hours {
		resp.Hours = append(resp.Hours, fromDomain(day))
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromDomain(day *domain.BusinessHours) DayHoursResponse {
	resp := DayHoursResponse{
		DayOfWeek: day.DayOfWeek,
		IsOpen:    day.IsOpen,
	}
	if day.OpenTime != nil {
		resp.OpenTime = day.OpenTime.String()
	}
	if day.CloseTime != nil {
		resp.CloseTime = day.CloseTime.String()
	}
	return resp
}
