package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BusinessHours расписание работы на один день недели.
// У каждого владельца ровно 7 строк (день 0-6, понедельник — 0),
// засеянных при регистрации и обновляемых на месте.
type BusinessHours struct {
	TenantID  string
	DayOfWeek int
	IsOpen    bool
	OpenTime  *types.TimeString
	CloseTime *types.TimeString
}

// ClosedDate конкретная дата, в которую владелец не работает
// независимо от недельного расписания
type ClosedDate struct {
	TenantID string
	Date     time.Time
}

// DayOfWeek возвращает порядковый номер дня недели 0-6,
// где понедельник — 0 (в соответствии с нумерацией BusinessHours)
func DayOfWeek(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
