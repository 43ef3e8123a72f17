package drift

import "errors"

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrDriftDetected = errors.New("published spec differs from source")
)
