package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client почтовый клиент поверх SendGrid.
// Все уведомления fire-and-forget: ошибка отправки логируется,
// но никогда не откатывает породившую её операцию.
type Client struct {
	sg        *sendgrid.Client
	fromEmail string
	fromName  string
	enabled   bool
	log       Logger
}

// NewClient создает почтовый клиент. При пустом apiKey или enabled=false
// клиент работает в no-op режиме: письма не отправляются, факт пропуска
// логируется.
func NewClient(apiKey, fromEmail, fromName string, enabled bool, log Logger) *Client {
	c := &Client{
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   enabled && apiKey != "",
		log:       log,
	}
	if c.enabled {
		c.sg = sendgrid.NewSendClient(apiKey)
	}
	return c
}

// SendAppointmentConfirmation отправляет клиенту подтверждение записи
func (c *Client) SendAppointmentConfirmation(ctx context.Context, appt *domain.Appointment, businessName string) error {
	html := fmt.Sprintf(`<h2>Запись подтверждена</h2>
<p>Здравствуйте, %s!</p>
<p>Ваша запись принята:</p>
<ul>
	<li><strong>Услуга:</strong> %s</li>
	<li><strong>Дата:</strong> %s</li>
	<li><strong>Время:</strong> %s</li>
	<li><strong>Компания:</strong> %s</li>
</ul>
<p>Спасибо за вашу запись.</p>`,
		appt.ClientName, appt.ServiceName, appt.Date.Format(domain.DateFormat), appt.StartTime, businessName)

	return c.send(ctx, appt.ClientEmail, appt.ClientName, "Подтверждение записи", html)
}

// SendOwnerNotification уведомляет владельца о новой записи
func (c *Client) SendOwnerNotification(ctx context.Context, appt *domain.Appointment, ownerEmail string) error {
	html := fmt.Sprintf(`<h2>Новая запись</h2>
<p>Зарегистрирована новая запись:</p>
<ul>
	<li><strong>Клиент:</strong> %s</li>
	<li><strong>Телефон:</strong> %s</li>
	<li><strong>Услуга:</strong> %s</li>
	<li><strong>Дата:</strong> %s</li>
	<li><strong>Время:</strong> %s</li>
</ul>`,
		appt.ClientName, appt.ClientPhone, appt.ServiceName, appt.Date.Format(domain.DateFormat), appt.StartTime)

	return c.send(ctx, ownerEmail, "", "Новая запись", html)
}

// SendSubscriptionActivated уведомляет владельца об активации подписки
func (c *Client) SendSubscriptionActivated(ctx context.Context, ownerEmail, businessName string, amount float64, until time.Time) error {
	html := fmt.Sprintf(`<h2>Оплата получена</h2>
<p>Здравствуйте, %s!</p>
<p>Ваша подписка успешно активирована.</p>
<ul>
	<li><strong>Сумма:</strong> %.2f</li>
	<li><strong>Действует до:</strong> %s</li>
</ul>
<p>Спасибо, что пользуетесь сервисом.</p>`,
		businessName, amount, until.Format("02.01.2006"))

	return c.send(ctx, ownerEmail, businessName, "Подписка активирована", html)
}

func (c *Client) send(ctx context.Context, toEmail, toName, subject, html string) error {
	if !c.enabled {
		c.log.Warn("Mailer disabled, skipping email to %s (%s)", toEmail, subject)
		return ErrNotConfigured
	}

	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", html)

	resp, err := c.sg.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: unexpected status code %d", ErrSendFailed, resp.StatusCode)
	}

	c.log.Info("Email sent to %s (%s)", toEmail, subject)
	return nil
}
