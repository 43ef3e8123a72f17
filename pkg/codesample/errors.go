package codesample

import "errors"

var (
	ErrRenderSample  = errors.New("error rendering code sample")
	ErrInvalidSample = errors.New("invalid code samples")
)
