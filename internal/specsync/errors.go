package specsync

import "errors"

var (
	ErrSourceUnavailable = errors.New("openapi source unavailable")
	ErrInvalidSource     = errors.New("openapi source is neither JSON nor YAML")
)
