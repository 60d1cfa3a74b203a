package billing_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/billing"
	"github.com/m04kA/SMC-AppointmentService/internal/service/accounts"
)

const (
	msgInvalidPayload   = "некорректное тело вебхука"
	msgInvalidSignature = "некорректная подпись вебхука"
)

// Платёжный провайдер шлёт до нескольких мегабайт, ограничиваем чтение
const maxPayloadBytes = 1 << 16

type Handler struct {
	billing  BillingClient
	accounts AccountsService
	logger   Logger
}

func NewHandler(billingClient BillingClient, accountsService AccountsService, logger Logger) *Handler {
	return &Handler{
		billing:  billingClient,
		accounts: accountsService,
		logger:   logger,
	}
}

// Handle POST /api/v1/billing/webhook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Warn("POST /billing/webhook - Failed to read payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}
	defer r.Body.Close()

	event, err := h.billing.ParseWebhookEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidSignature):
			h.logger.Warn("POST /billing/webhook - Invalid signature")
			handlers.RespondBadRequest(w, msgInvalidSignature)

		default:
			h.logger.Warn("POST /billing/webhook - Failed to parse event: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPayload)
		}
		return
	}

	// Событие не про завершённую оплату, подтверждаем без обработки
	if event == nil {
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	if err := h.accounts.ActivateSubscription(r.Context(), event.TenantID, event.SessionID, event.Amount); err != nil {
		if errors.Is(err, accounts.ErrTenantNotFound) {
			h.logger.Warn("POST /billing/webhook - Tenant not found: tenant_id=%s", event.TenantID)
			// 200, чтобы провайдер не ретраил событие по несуществующему тенанту
			handlers.RespondJSON(w, http.StatusOK, nil)
			return
		}
		h.logger.Error("POST /billing/webhook - Failed to activate subscription: tenant_id=%s, error=%v",
			event.TenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /billing/webhook - Subscription activated: tenant_id=%s, session_id=%s",
		event.TenantID, event.SessionID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
