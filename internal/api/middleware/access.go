package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/accounts"
)

const (
	msgAccessExpired  = "пробный период завершён, требуется подписка"
	msgTenantNotFound = "аккаунт не найден"
)

// AccessChecker проверяет, что триал или подписка тенанта ещё действуют
type AccessChecker interface {
	CheckAccess(ctx context.Context, tenantID string) (*domain.Tenant, error)
}

// AccessGate блокирует owner-эндпоинты с истёкшим доступом.
// Эндпоинты подписки и оплаты под него не ставятся, иначе
// тенант с истёкшим триалом не сможет оплатить.
func AccessGate(checker AccessChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tenantID, ok := GetTenantID(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if _, err := checker.CheckAccess(r.Context(), tenantID); err != nil {
				switch {
				case errors.Is(err, accounts.ErrAccessExpired):
					handlers.RespondForbidden(w, msgAccessExpired)
				case errors.Is(err, accounts.ErrTenantNotFound):
					handlers.RespondUnauthorized(w, msgTenantNotFound)
				default:
					handlers.RespondInternalError(w)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
