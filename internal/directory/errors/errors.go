package errors

import (
	"fmt"
)

var (
	ErrNotFound       = fmt.Errorf("not found")
	ErrProfileExists  = fmt.Errorf("company profile already exists")
	ErrDuplicateEmail = fmt.Errorf("email already exists")
	ErrInvalidInput   = fmt.Errorf("invalid input")
	ErrUnauthorized   = fmt.Errorf("unauthorized")
)
