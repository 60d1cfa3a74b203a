package list_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const msgMissingTenantID = "отсутствует ID тенанта"

// AppointmentResponse HTTP модель записи
type AppointmentResponse struct {
	ID              string `json:"id"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	DurationMinutes int    `json:"durationMinutes"`
	ClientName      string `json:"clientName"`
	ClientPhone     string `json:"clientPhone"`
	ClientEmail     string `json:"clientEmail,omitempty"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	Status          string `json:"status"`
}

// ListAppointmentsResponse HTTP response model
type ListAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	appointments, err := h.service.List(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list: tenant_id=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := ListAppointmentsResponse{Appointments: make([]AppointmentResponse, 0, len(appointments))}
	for _, appt := range appointments {
		resp.Appointments = append(resp.Appointments, fromDomain(appt))
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromDomain(appt *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              appt.ID,
		ServiceID:       appt.ServiceID,
		ServiceName:     appt.ServiceName,
		DurationMinutes: appt.DurationMinutes,
		ClientName:      appt.ClientName,
		ClientPhone:     appt.ClientPhone,
		ClientEmail:     appt.ClientEmail,
		Date:            appt.Date.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		Status:          string(appt.Status),
	}
}
