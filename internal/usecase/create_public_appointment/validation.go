package create_public_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TenantSegment) == "" {
		return fmt.Errorf("%w: tenant segment is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: client phone is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, string(req.StartTime))
	}

	return nil
}

// validateWithinHours проверяет, что интервал записи целиком помещается в часы работы
func validateWithinHours(interval domain.Interval, openTime, closeTime types.TimeString) error {
	if interval.Start.IsBefore(openTime) || interval.End.IsAfter(closeTime) {
		return ErrOutsideBusinessHours
	}
	return nil
}
