package catalog

import "errors"

var (
	ErrNotConfigured   = errors.New("remote catalog is not configured")
	ErrServiceNotFound = errors.New("service not found")
)
