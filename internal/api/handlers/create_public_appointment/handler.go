package create_public_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createPublicAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_public_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgTenantNotFound     = "бизнес не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgTenantClosed       = "в выбранную дату запись недоступна"
	msgOutsideHours       = "время выходит за часы работы"
	msgSlotConflict       = "это время уже занято, выберите другое"
	msgAccessExpired      = "онлайн-запись временно недоступна"
	msgInvalidInput       = "некорректные данные записи"
	msgCorruptRecord      = "повреждённые данные расписания, обратитесь в поддержку"
)

type Handler struct {
	useCase CreatePublicAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePublicAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/public/{tenant}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	segment := mux.Vars(r)["tenant"]

	var req CreatePublicAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/{tenant}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(segment)
	if err != nil {
		h.logger.Warn("POST /public/{tenant}/appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createPublicAppointment.ErrSlotConflict):
			h.logger.Warn("POST /public/{tenant}/appointments - Slot conflict: segment=%s, date=%s, time=%s",
				segment, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createPublicAppointment.ErrTenantNotFound):
			h.logger.Warn("POST /public/{tenant}/appointments - Tenant not found: segment=%s", segment)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, createPublicAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /public/{tenant}/appointments - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createPublicAppointment.ErrTenantClosed):
			h.logger.Warn("POST /public/{tenant}/appointments - Closed date: segment=%s, date=%s", segment, req.Date)
			handlers.RespondBadRequest(w, msgTenantClosed)

		case errors.Is(err, createPublicAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /public/{tenant}/appointments - Outside hours: segment=%s, time=%s", segment, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createPublicAppointment.ErrAccessExpired):
			h.logger.Warn("POST /public/{tenant}/appointments - Access expired: segment=%s", segment)
			handlers.RespondForbidden(w, msgAccessExpired)

		case errors.Is(err, createPublicAppointment.ErrInvalidInput):
			h.logger.Warn("POST /public/{tenant}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createPublicAppointment.ErrInvalidRecord):
			h.logger.Error("POST /public/{tenant}/appointments - Corrupt appointment record: segment=%s, error=%v", segment, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCorruptRecord)

		default:
			h.logger.Error("POST /public/{tenant}/appointments - Failed to create: segment=%s, error=%v", segment, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /public/{tenant}/appointments - Appointment created: appointment_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
