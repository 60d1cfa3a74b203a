package create_public_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createPublicAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_public_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreatePublicAppointmentRequest HTTP request model
type CreatePublicAppointmentRequest struct {
	ServiceID   string `json:"serviceId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ClientEmail string `json:"clientEmail,omitempty"`
	Date        string `json:"date"`      // "2026-01-15"
	StartTime   string `json:"startTime"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string `json:"id"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	DurationMinutes int    `json:"durationMinutes"`
	ClientName      string `json:"clientName"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	Status          string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreatePublicAppointmentRequest) ToUseCaseRequest(segment string) (*createPublicAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createPublicAppointment.Request{
		TenantSegment: segment,
		ServiceID:     r.ServiceID,
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		ClientEmail:   r.ClientEmail,
		Date:          date,
		StartTime:     startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPublicAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		ClientName:      resp.ClientName,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		Status:          resp.Status,
	}
}
