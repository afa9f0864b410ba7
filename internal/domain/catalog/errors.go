package catalog

import "errors"

var ErrConfig = errors.New("catalog misconfigured")
