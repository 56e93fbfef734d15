package window

import "errors"

var errUnknownType = errors.New("unknown window type")
