package scoring

import "errors"

var ErrValidation = errors.New("invalid actual value")
