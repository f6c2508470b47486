package services

import (
	"context"

	"cafe-pos/db"
	"cafe-pos/models"
)

type OrderStore struct {
	q db.Querier
}

func NewOrderStore(q db.Querier) *OrderStore {
	return &OrderStore{q: q}
}

func (s *OrderStore) InsertOrderLine(ctx context.Context, customerID int64, line models.OrderLine) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO orders (customer_id, item_name, quantity, total_price)
		VALUES ($1, $2, $3, $4)`,
		customerID, line.ItemName, line.Quantity, line.LineTotal,
	)
	return err
}
