package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrTableNotFound        = errors.New("table not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrItemNotFound         = errors.New("order item not found")
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrEmptyOrder      = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrOrderPending    = errors.New("table already has an order waiting for the waiter")
	ErrTableExists     = errors.New("table number already in use")
	ErrOrderLocked     = errors.New("order can no longer be modified")
	ErrUnknownAction   = errors.New("unknown action")
	ErrInvalidInput    = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("invalid credentials or access denied")
)

// notFound turns gorm's missing-row error into the given sentinel and wraps
// anything else.
func notFound(err error, sentinel error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("%s: %w", op, err)
}
