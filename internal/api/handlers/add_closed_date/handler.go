package add_closed_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingTenantID    = "отсутствует ID тенанта"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateAlreadyClosed  = "эта дата уже отмечена как выходной"
)

// AddClosedDateRequest HTTP request model
type AddClosedDateRequest struct {
	Date string `json:"date"` // "2026-01-15"
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

// Handle POST /api/v1/schedule/closed-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedule/closed-dates - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	var req AddClosedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/closed-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /schedule/closed-dates - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.AddClosedDate(r.Context(), tenantID, date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrDateAlreadyClosed):
			h.logger.Warn("POST /schedule/closed-dates - Already closed: tenant_id=%s, date=%s", tenantID, req.Date)
			handlers.RespondConflict(w, msgDateAlreadyClosed)

		default:
			h.logger.Error("POST /schedule/closed-dates - Failed to add: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/closed-dates - Date closed: tenant_id=%s, date=%s", tenantID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, nil)
}
