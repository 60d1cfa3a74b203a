package domain

// Default values
const (
	// DefaultServiceDurationMinutes длительность для легаси-записей,
	// у которых длительность услуги не была зафиксирована
	DefaultServiceDurationMinutes = 30

	// SlotStepMinutes фиксированный шаг генерации слотов.
	// Не зависит от длительности услуги: услуга на 45 минут
	// всё равно может начинаться на 15-минутной границе.
	SlotStepMinutes = 15
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MinSlugLength             = 3
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ReasonClosed причина пустого списка слотов: выходной или закрытая дата.
// Это не ошибка, а валидный пустой результат.
const ReasonClosed = "closed"
