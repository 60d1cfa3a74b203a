package create_checkout_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/tenant"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/billing"
)

const (
	msgMissingTenantID    = "отсутствует ID тенанта"
	msgTenantNotFound     = "аккаунт не найден"
	msgBillingUnavailable = "оплата временно недоступна"
)

// CheckoutSessionResponse HTTP response model
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type Handler struct {
	tenants TenantProvider
	billing BillingClient
	logger  Logger
}

func NewHandler(tenants TenantProvider, billingClient BillingClient, logger Logger) *Handler {
	return &Handler{
		tenants: tenants,
		billing: billingClient,
		logger:  logger,
	}
}

// Handle POST /api/v1/subscription/checkout
// Эндпоинт доступен и с истёкшим триалом, иначе подписку не оформить
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("POST /subscription/checkout - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	t, err := h.tenants.GetByID(r.Context(), tenantID)
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) {
			h.logger.Warn("POST /subscription/checkout - Tenant not found: tenant_id=%s", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)
			return
		}
		h.logger.Error("POST /subscription/checkout - Failed to get tenant: tenant_id=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	session, err := h.billing.CreateCheckoutSession(r.Context(), t)
	if err != nil {
		if errors.Is(err, billing.ErrNotConfigured) {
			h.logger.Warn("POST /subscription/checkout - Billing not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBillingUnavailable)
			return
		}
		h.logger.Error("POST /subscription/checkout - Failed to create session: tenant_id=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /subscription/checkout - Session created: tenant_id=%s, session_id=%s", tenantID, session.ID)
	handlers.RespondJSON(w, http.StatusCreated, &CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	})
}
