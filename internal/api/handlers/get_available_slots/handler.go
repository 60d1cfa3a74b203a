package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingService  = "не указана услуга"
	msgTenantNotFound  = "бизнес не найден"
	msgServiceNotFound = "услуга не найдена"
	msgCorruptRecord   = "повреждённые данные расписания, обратитесь в поддержку"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date            string   `json:"date"`
	ServiceID       string   `json:"serviceId"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
	Reason          string   `json:"reason,omitempty"`
}

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/public/{tenant}/slots?serviceId=...&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	segment := mux.Vars(r)["tenant"]

	serviceID := r.URL.Query().Get("serviceId")
	if serviceID == "" {
		h.logger.Warn("GET /public/{tenant}/slots - Missing serviceId")
		handlers.RespondBadRequest(w, msgMissingService)
		return
	}

	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /public/{tenant}/slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		TenantSegment: segment,
		ServiceID:     serviceID,
		Date:          date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTenantNotFound):
			h.logger.Warn("GET /public/{tenant}/slots - Tenant not found: segment=%s", segment)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /public/{tenant}/slots - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /public/{tenant}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidRecord):
			h.logger.Error("GET /public/{tenant}/slots - Corrupt appointment record: segment=%s, error=%v", segment, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCorruptRecord)

		default:
			h.logger.Error("GET /public/{tenant}/slots - Failed to get slots: segment=%s, error=%v", segment, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := &SlotsResponse{
		Date:            result.Date.Format(domain.DateFormat),
		ServiceID:       result.ServiceID,
		DurationMinutes: result.DurationMinutes,
		Slots:           make([]string, 0, len(result.Slots)),
		Reason:          result.Reason,
	}
	for _, slot := range result.Slots {
		resp.Slots = append(resp.Slots, slot.String())
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
