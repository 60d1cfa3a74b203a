package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент биллинга поверх Stripe Checkout.
// Продаёт один товар: месяц подписки. Идентификатор владельца
// прокидывается через metadata и возвращается вебхуком.
type Client struct {
	webhookSecret string
	price         float64
	currency      string
	successURL    string
	cancelURL     string
	enabled       bool
	log           Logger
}

// NewClient создает клиент биллинга. Stripe использует глобальный API-ключ;
// он выставляется здесь один раз при старте сервиса.
func NewClient(apiKey, webhookSecret string, price float64, currency, successURL, cancelURL string, log Logger) *Client {
	enabled := apiKey != ""
	if enabled {
		stripe.Key = apiKey
	}
	return &Client{
		webhookSecret: webhookSecret,
		price:         price,
		currency:      strings.ToLower(currency),
		successURL:    successURL,
		cancelURL:     cancelURL,
		enabled:       enabled,
		log:           log,
	}
}

// CreateCheckoutSession создает платёжную сессию на месяц подписки
func (c *Client) CreateCheckoutSession(ctx context.Context, tenant *domain.Tenant) (*CheckoutSession, error) {
	if !c.enabled {
		return nil, ErrNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(c.successURL),
		CancelURL:         stripe.String(c.cancelURL),
		ClientReferenceID: stripe.String(tenant.ID),
		CustomerEmail:     stripe.String(tenant.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(c.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Месячная подписка - %s", tenant.BusinessName)),
					},
					UnitAmount: stripe.Int64(int64(c.price * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"tenant_id": tenant.ID,
		},
	}
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateSession, err)
	}

	c.log.Info("Created checkout session %s for tenant=%s", sess.ID, tenant.ID)
	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// ParseWebhookEvent проверяет подпись вебхука и извлекает завершённую оплату.
// Возвращает (nil, nil) для событий, которые сервису не интересны.
func (c *Client) ParseWebhookEvent(payload []byte, signatureHeader string) (*PaymentCompleted, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if event.Type != "checkout.session.completed" {
		c.log.Info("Ignoring stripe event %s type=%s", event.ID, event.Type)
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	tenantID := strings.TrimSpace(sess.Metadata["tenant_id"])
	if tenantID == "" {
		tenantID = strings.TrimSpace(sess.ClientReferenceID)
	}
	if tenantID == "" {
		return nil, fmt.Errorf("%w: missing tenant_id metadata", ErrInvalidPayload)
	}

	return &PaymentCompleted{
		SessionID: sess.ID,
		TenantID:  tenantID,
		Amount:    float64(sess.AmountTotal) / 100,
	}, nil
}
