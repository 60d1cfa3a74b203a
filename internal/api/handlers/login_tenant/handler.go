package login_tenant

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/accounts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный email или пароль"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse HTTP response model
type AuthResponse struct {
	Token              string `json:"token"`
	TenantID           string `json:"tenantId"`
	Email              string `json:"email"`
	BusinessName       string `json:"businessName"`
	TrialEnds          string `json:"trialEnds"`
	SubscriptionActive bool   `json:"subscriptionActive"`
}

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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to login: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Tenant logged in: tenant_id=%s", result.TenantID)
	handlers.RespondJSON(w, http.StatusOK, &AuthResponse{
		Token:              result.Token,
		TenantID:           result.TenantID,
		Email:              result.Email,
		BusinessName:       result.BusinessName,
		TrialEnds:          result.TrialEnds.Format(domain.DateFormat),
		SubscriptionActive: result.SubscriptionActive,
	})
}
