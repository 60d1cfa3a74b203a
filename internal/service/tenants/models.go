package tenants

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// PublicProfile публичная витрина бизнеса: название, активные услуги
// и недельное расписание. Контактные и платёжные данные владельца
// наружу не отдаются.
type PublicProfile struct {
	BusinessName  string
	Services      []*domain.Service
	BusinessHours []*domain.BusinessHours
}
