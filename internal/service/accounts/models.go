package accounts

import "time"

// RegisterRequest данные регистрации нового владельца
type RegisterRequest struct {
	Email        string
	Password     string
	BusinessName string
}

// AuthResponse результат регистрации или входа
type AuthResponse struct {
	Token              string
	TenantID           string
	Email              string
	BusinessName       string
	TrialEnds          time.Time
	SubscriptionActive bool
}

// DashboardStats сводка кабинета владельца
type DashboardStats struct {
	TotalAppointments   int
	PendingAppointments int
	TotalServices       int
	TrialDaysLeft       int
}

// SubscriptionStatus состояние подписки владельца
type SubscriptionStatus struct {
	SubscriptionActive bool
	TrialDaysLeft      int
	SubscriptionEnds   *time.Time
	SubscriptionPrice  float64
}
