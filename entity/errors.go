package entity

import "errors"

// ErrInvalidEntity is wrapped by every constructor validation failure
var ErrInvalidEntity = errors.New("invalid entity")
