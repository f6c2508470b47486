package services

import (
	"context"

	"cafe-pos/models"
)

// Catalog owns the menu. Positions are 1-based ranks in ascending id order and
// are resolved against the current table contents on every call.
type Catalog interface {
	ListItems(ctx context.Context) ([]models.MenuItem, error)
	ItemCount(ctx context.Context) (int, error)
	ItemAtPosition(ctx context.Context, n int) (models.MenuItem, error)
	AddItem(ctx context.Context, name string, price int64) (int64, error)
	RemoveItem(ctx context.Context, id int64) error
	SetPrice(ctx context.Context, id int64, price int64) error
}

type Customers interface {
	InsertCustomer(ctx context.Context, name, mobile string) (int64, error)
}

type Admins interface {
	Authenticate(ctx context.Context, username, password string) (bool, error)
	EnsureDefaultAdmin(ctx context.Context, username, password string) error
	AddAdmin(ctx context.Context, username, password string) error
}

// OrderLog persists cart lines against the owning customer.
type OrderLog interface {
	InsertOrderLine(ctx context.Context, customerID int64, line models.OrderLine) error
}
