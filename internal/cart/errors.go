package cart

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfStock matches every *OutOfStockError.
	ErrOutOfStock = errors.New("out of stock")
	// ErrMalformedState matches every *MalformedStateError.
	ErrMalformedState = errors.New("malformed persisted state")
	// ErrEmptyProductID is returned when a line is added without a product ID.
	ErrEmptyProductID = errors.New("product id is required")
	// ErrNegativeStockCeiling is returned when the catalog reports a negative stock.
	ErrNegativeStockCeiling = errors.New("stock ceiling must be a non-negative integer")

	ErrInvalidTaxRate      = errors.New("tax rate must be between 0 and 1")
	ErrInvalidShippingCost = errors.New("flat shipping cost must not be negative")
	ErrInvalidThreshold    = errors.New("free shipping threshold must not be negative")
)

// OutOfStockError is returned when an add or update would exceed the stock
// ceiling of a product. The cart is left unchanged.
type OutOfStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %s: requested %d, only %d available", e.ProductID, e.Requested, e.Available)
}

func (e *OutOfStockError) Is(target error) bool {
	return target == ErrOutOfStock
}

// MalformedStateError describes a piece of persisted state that could not be
// restored. Piece names what was lost ("line", "shipping", "payment", "cart")
// and Index is the record position for lines, -1 otherwise.
type MalformedStateError struct {
	Piece string
	Index int
	Err   error
}

func (e *MalformedStateError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("malformed %s record %d: %v", e.Piece, e.Index, e.Err)
	}
	return fmt.Sprintf("malformed %s: %v", e.Piece, e.Err)
}

func (e *MalformedStateError) Unwrap() error {
	return e.Err
}

func (e *MalformedStateError) Is(target error) bool {
	return target == ErrMalformedState
}

// Malformed builds a MalformedStateError for a non-indexed piece of state.
func Malformed(piece string, err error) *MalformedStateError {
	return &MalformedStateError{Piece: piece, Index: -1, Err: err}
}
