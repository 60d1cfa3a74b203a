package register_tenant

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/accounts"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"businessName"`
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

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterRequest) ToServiceRequest() *accounts.RegisterRequest {
	return &accounts.RegisterRequest{
		Email:        r.Email,
		Password:     r.Password,
		BusinessName: r.BusinessName,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *accounts.AuthResponse) *AuthResponse {
	return &AuthResponse{
		Token:              resp.Token,
		TenantID:           resp.TenantID,
		Email:              resp.Email,
		BusinessName:       resp.BusinessName,
		TrialEnds:          resp.TrialEnds.Format(domain.DateFormat),
		SubscriptionActive: resp.SubscriptionActive,
	}
}
