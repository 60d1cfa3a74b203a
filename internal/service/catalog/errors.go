package catalog

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
)
