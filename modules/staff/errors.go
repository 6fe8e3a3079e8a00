package staff

import "errors"

var ErrInvalidMode = errors.New("invalid form mode")
