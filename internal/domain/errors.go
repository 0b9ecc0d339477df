package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrItemNotFound      = errors.New("stock item not found")
	ErrInvalidItem       = errors.New("invalid stock item")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrConcurrentWrite   = errors.New("concurrent write detected")
)
