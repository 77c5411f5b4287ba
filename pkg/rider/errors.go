package rider

import "errors"

var ErrInvalidConfig = errors.New("invalid rider configuration")
