package schedule

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDateAlreadyClosed  = errors.New("date already closed")
	ErrClosedDateNotFound = errors.New("closed date not found")
	ErrInternal           = errors.New("internal error")
)
