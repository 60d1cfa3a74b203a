package appointments

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAlreadyCancelled    = errors.New("appointment already cancelled")
	ErrInternal            = errors.New("internal error")
)
