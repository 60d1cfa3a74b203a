package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingTenantID    = "отсутствует ID тенанта"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound    = "услуга не найдена"
	msgTenantClosed       = "выбранная дата является выходным"
	msgOutsideHours       = "время выходит за часы работы"
	msgSlotConflict       = "это время уже занято"
	msgInvalidInput       = "некорректные данные записи"
	msgCorruptRecord      = "повреждённые данные расписания, обратитесь в поддержку"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: tenant_id=%s, date=%s, time=%s",
				tenantID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%s, tenant_id=%s", req.ServiceID, tenantID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrTenantClosed):
			h.logger.Warn("POST /appointments - Closed date: tenant_id=%s, date=%s", tenantID, req.Date)
			handlers.RespondBadRequest(w, msgTenantClosed)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside hours: tenant_id=%s, time=%s", tenantID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrInvalidRecord):
			h.logger.Error("POST /appointments - Corrupt appointment record: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCorruptRecord)

		default:
			h.logger.Error("POST /appointments - Failed to create: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%s, tenant_id=%s", result.ID, tenantID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
