package billing

// CheckoutSession созданная платёжная сессия
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentCompleted успешно завершённая оплата подписки
type PaymentCompleted struct {
	SessionID string
	TenantID  string
	Amount    float64
}
