package types

import "errors"

var (
	// ErrUnknownUnit is returned when a unit name or label is not recognised.
	ErrUnknownUnit = errors.New("grogetter: unknown unit")

	// ErrInvalidQuantity is returned for zero, negative or non-finite quantities.
	ErrInvalidQuantity = errors.New("grogetter: quantity must be positive")

	// ErrEmptyName is returned when a list, item or category name is blank.
	ErrEmptyName = errors.New("grogetter: name must not be empty")
)
