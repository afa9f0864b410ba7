package assessment

import "errors"

var ErrNotFound = errors.New("assessment not found")
