package contact

import "errors"

var (
	ErrUnknownControl = errors.New("unknown form control")
	ErrToastNotShown  = errors.New("success toast not shown")
)
