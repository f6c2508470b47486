package services

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when a position or id does not match any menu item.
	// It is a normal outcome of user input, not a system failure.
	ErrItemNotFound = errors.New("menu item not found")
	ErrNoCustomerID = errors.New("failed to insert customer, no id obtained")
	ErrAdminExists  = errors.New("admin already exists")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PersistError reports a failed write whose in-memory effect was kept.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
