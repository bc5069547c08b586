package expense

import "errors"

var (
	ErrInvalidAmount   = errors.New("valor must be greater than zero")
	ErrInvalidDate     = errors.New("data must be a valid ISO date (YYYY-MM-DD)")
	ErrUnknownField    = errors.New("unknown expense field")
	ErrUnknownSortKey  = errors.New("unknown sort key")
	ErrIndexOutOfRange = errors.New("expense index out of range")
)
