package catalog

import (
	"errors"
	"fmt"
)

// Error kinds from the operator/customer contract. Every call either
// succeeds or fails with exactly one of these, wrapped with a
// human-readable identifier (ISBN or field name) per the propagation
// policy: validation errors abort before any mutation, OUT_OF_STOCK is
// the sole error kind with a side effect (sale-miss accounting).
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNullInput       = errors.New("null input")
	ErrNotInStock      = errors.New("not in stock")
	ErrDuplicate       = errors.New("duplicate")
	ErrOutOfStock      = errors.New("out of stock")
	ErrUnsupported     = errors.New("unsupported operation")
)

func invalidArgumentf(field, format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, field, fmt.Sprintf(format, a...))
}

func nullInput(field string) error {
	return fmt.Errorf("%w: %s", ErrNullInput, field)
}

func notInStock(isbn int32) error {
	return fmt.Errorf("%w: isbn %d", ErrNotInStock, isbn)
}

func duplicate(isbn int32) error {
	return fmt.Errorf("%w: isbn %d already exists", ErrDuplicate, isbn)
}

func outOfStock(shortfalls map[int32]int) error {
	return fmt.Errorf("%w: shortfall by isbn %v", ErrOutOfStock, shortfalls)
}
