package catalog

// CreateServiceRequest данные для создания услуги
type CreateServiceRequest struct {
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
}

// UpdateServiceRequest частичное обновление услуги: nil-поля не изменяются
type UpdateServiceRequest struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *float64
	Active          *bool
}
