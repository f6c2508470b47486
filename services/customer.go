package services

import (
	"context"
	"errors"
	"strings"

	"cafe-pos/db"

	"github.com/jackc/pgx/v5"
)

type CustomerStore struct {
	q db.Querier
}

func NewCustomerStore(q db.Querier) *CustomerStore {
	return &CustomerStore{q: q}
}

// InsertCustomer inserts a customer row and returns the generated id.
func (s *CustomerStore) InsertCustomer(ctx context.Context, name, mobile string) (int64, error) {
	var id int64
	err := s.q.QueryRow(ctx, `
		INSERT INTO customers (name, mobile) VALUES ($1, $2)
		RETURNING id`,
		name, mobile,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNoCustomerID
		}
		return 0, err
	}
	return id, nil
}

// Registrar validates customer details before handing them to the store.
type Registrar struct {
	customers Customers
}

func NewRegistrar(customers Customers) *Registrar {
	return &Registrar{customers: customers}
}

// Register validates name and mobile, then persists the customer. Nothing is
// written when validation fails.
func (r *Registrar) Register(ctx context.Context, name, mobile string) (int64, error) {
	if err := ValidateCustomer(name, mobile); err != nil {
		return 0, err
	}
	id, err := r.customers.InsertCustomer(ctx, strings.TrimSpace(name), mobile)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, ErrNoCustomerID
	}
	return id, nil
}
