package list_closed_dates

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const msgMissingTenantID = "отсутствует ID тенанта"

// ClosedDatesResponse HTTP response model
type ClosedDatesResponse struct {
	Dates []string `json:"dates"`
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

// Handle GET /api/v1/schedule/closed-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /schedule/closed-dates - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	dates, err := h.service.ListClosedDates(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /schedule/closed-dates - Failed to list: tenant_id=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := ClosedDatesResponse{Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, d.Date.Format(domain.DateFormat))
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
