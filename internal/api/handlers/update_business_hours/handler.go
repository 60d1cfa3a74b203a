package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingTenantID    = "отсутствует ID тенанта"
	msgInvalidHours       = "некорректные часы работы"
)

// DayHoursRequest HTTP модель часов работы одного дня
type DayHoursRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
}

// UpdateBusinessHoursRequest HTTP request model
type UpdateBusinessHoursRequest struct {
	Hours []DayHoursRequest `json:"hours"`
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

// Handle PUT /api/v1/schedule/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("PUT /schedule/hours - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	var req UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	days := make([]schedule.DayHours, 0, len(req.Hours))
	for _, day := range req.Hours {
		days = append(days, schedule.DayHours{
			DayOfWeek: day.DayOfWeek,
			IsOpen:    day.IsOpen,
			OpenTime:  day.OpenTime,
			CloseTime: day.CloseTime,
		})
	}

	if err := h.service.UpdateHours(r.Context(), tenantID, days); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/hours - Invalid hours: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /schedule/hours - Failed to update hours: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/hours - Hours updated: tenant_id=%s, days=%d", tenantID, len(days))
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
