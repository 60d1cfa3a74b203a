package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	TenantSegment string    // Публичный сегмент пути: slug или id тенанта
	ServiceID     string    // ID услуги
	Date          time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	TenantID        string             // ID тенанта после резолва сегмента
	ServiceID       string             // ID услуги
	Date            time.Time          // Дата, на которую запрашивались слоты
	DurationMinutes int                // Длительность услуги в минутах
	Slots           []types.TimeString // Времена начала доступных слотов, по возрастанию
	Reason          string             // "closed", если день закрыт; иначе пусто
}
