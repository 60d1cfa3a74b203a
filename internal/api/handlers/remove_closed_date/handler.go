package remove_closed_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
)

const (
	msgMissingTenantID    = "отсутствует ID тенанта"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgClosedDateNotFound = "выходной на эту дату не найден"
)

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

// Handle DELETE /api/v1/schedule/closed-dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /schedule/closed-dates/{date} - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	dateStr := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("DELETE /schedule/closed-dates/{date} - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.RemoveClosedDate(r.Context(), tenantID, date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrClosedDateNotFound):
			h.logger.Warn("DELETE /schedule/closed-dates/{date} - Not found: tenant_id=%s, date=%s", tenantID, dateStr)
			handlers.RespondNotFound(w, msgClosedDateNotFound)

		default:
			h.logger.Error("DELETE /schedule/closed-dates/{date} - Failed to remove: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/closed-dates/{date} - Date reopened: tenant_id=%s, date=%s", tenantID, dateStr)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
