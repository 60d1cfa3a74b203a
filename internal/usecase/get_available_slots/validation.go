package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TenantSegment) == "" {
		return fmt.Errorf("%w: tenant segment is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
