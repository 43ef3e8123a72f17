package document

import "errors"

var (
	ErrInvalidDocument = errors.New("document root must be a JSON object")
	ErrUnresolvedRef   = errors.New("unresolved reference")
	ErrInvalidNumber   = errors.New("number has no JSON representation")
)
