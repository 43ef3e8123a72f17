package linkcheck

import "errors"

var ErrBrokenLinks = errors.New("broken documentation links")
