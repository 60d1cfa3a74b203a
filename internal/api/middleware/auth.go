package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

type contextKey string

const tenantIDKey contextKey = "tenantID"

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "некорректный токен авторизации"
)

// Auth проверяет Bearer JWT и кладёт ID тенанта в контекст запроса
func Auth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenString := strings.TrimPrefix(auth, "Bearer ")
			claims := jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid || claims.Subject == "" {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), tenantIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTenantID извлекает ID тенанта из контекста запроса
func GetTenantID(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(tenantIDKey).(string)
	return tenantID, ok
}
