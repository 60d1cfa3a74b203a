package get_subscription_status

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/accounts"
)

const (
	msgMissingTenantID = "отсутствует ID тенанта"
	msgTenantNotFound  = "аккаунт не найден"
)

// SubscriptionStatusResponse HTTP response model
type SubscriptionStatusResponse struct {
	SubscriptionActive bool    `json:"subscriptionActive"`
	TrialDaysLeft      int     `json:"trialDaysLeft"`
	SubscriptionEnds   *string `json:"subscriptionEnds,omitempty"`
	SubscriptionPrice  float64 `json:"subscriptionPrice"`
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

// Handle GET /api/v1/subscription
// Эндпоинт доступен и с истёкшим триалом, иначе подписку не оформить
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /subscription - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	status, err := h.service.GetSubscriptionStatus(r.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrTenantNotFound):
			h.logger.Warn("GET /subscription - Tenant not found: tenant_id=%s", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("GET /subscription - Failed to get status: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := &SubscriptionStatusResponse{
		SubscriptionActive: status.SubscriptionActive,
		TrialDaysLeft:      status.TrialDaysLeft,
		SubscriptionPrice:  status.SubscriptionPrice,
	}
	if status.SubscriptionEnds != nil {
		ends := status.SubscriptionEnds.Format(time.RFC3339)
		resp.SubscriptionEnds = &ends
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
