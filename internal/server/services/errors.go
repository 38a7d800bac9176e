package services

import "errors"

// Handlers map these to HTTP status codes with errors.Is.
var (
	ErrMethodNotAllowed      = errors.New("method not allowed")
	ErrMissingInput          = errors.New("missing input")
	ErrRecipientUnavailable  = errors.New("recipient unavailable")
	ErrDeliveryOrPersistence = errors.New("delivery or persistence failed")
	ErrDelivery              = errors.New("delivery failed")
	ErrInvalidCode           = errors.New("invalid or expired code")
	ErrInternal              = errors.New("internal error")
)
