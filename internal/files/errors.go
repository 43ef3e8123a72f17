package files

import "errors"

var (
	ErrGettingFileFromURL = errors.New("error getting file from url")
)
