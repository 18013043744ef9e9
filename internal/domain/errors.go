package domain

import "errors"

// Error taxonomy shared by the routes. Callers wrap these with fmt.Errorf("%w")
// and the HTTP layer maps them to status codes with errors.Is.
var (
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("authentication failed")
	ErrGateway        = errors.New("payment gateway failure")
	ErrStore          = errors.New("store failure")
	ErrNotFound       = errors.New("not found")
	ErrConfig         = errors.New("configuration error")
)
