package register_tenant

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/accounts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailTaken         = "этот email уже зарегистрирован"
	msgInvalidInput       = "некорректные данные регистрации"
)

type Handler struct {
	service AccountsService
	logger  Logger
}

func NewHandler(service AccountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email taken: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/register - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Tenant registered successfully: tenant_id=%s", result.TenantID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
