package cli

import "errors"

var ErrInvalidFlag = errors.New("invalid flag value")
