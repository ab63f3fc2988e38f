package models

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrOrderNotFound   = errors.New("order not found")

	ErrDuplicateEmail     = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("you do not have permission to perform this action")

	ErrEmptyCart       = errors.New("your cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrOrderNotPending = errors.New("only pending orders can be cancelled")
	ErrStatusConflict  = errors.New("order status changed concurrently, try again")
)

// InsufficientStockError names the product that could not be reserved.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s", e.ProductName)
}

// InvalidTransitionError reports a status change the order lifecycle does
// not allow.
type InvalidTransitionError struct {
	From, To OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %q to %q", e.From, e.To)
}
