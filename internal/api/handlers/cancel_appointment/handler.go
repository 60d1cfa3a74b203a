package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
)

const (
	msgMissingTenantID     = "отсутствует ID тенанта"
	msgAppointmentNotFound = "запись не найдена"
	msgAlreadyCancelled    = "запись уже отменена"
)

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

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	appointmentID := mux.Vars(r)["appointmentId"]

	if err := h.service.Cancel(r.Context(), tenantID, appointmentID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Not found: appointment_id=%s, tenant_id=%s",
				appointmentID, tenantID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Already cancelled: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled: appointment_id=%s, tenant_id=%s",
		appointmentID, tenantID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
