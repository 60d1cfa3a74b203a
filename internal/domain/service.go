package domain

import "time"

// Service услуга в каталоге владельца.
// "Удаление" услуги — это сброс флага Active, никогда не физическое
// удаление: записи, ссылающиеся на неактивную услугу, остаются
// валидными историческими данными.
type Service struct {
	ID              string
	TenantID        string
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	Active          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
