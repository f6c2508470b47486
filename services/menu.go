package services

import (
	"context"
	"errors"
	"strings"

	"cafe-pos/db"
	"cafe-pos/models"

	"github.com/jackc/pgx/v5"
)

type MenuStore struct {
	q db.Querier
}

func NewMenuStore(q db.Querier) *MenuStore {
	return &MenuStore{q: q}
}

func (s *MenuStore) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.q.Query(ctx, `SELECT id, name, price FROM menu ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var it models.MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *MenuStore) ItemCount(ctx context.Context) (int, error) {
	var n int
	err := s.q.QueryRow(ctx, `SELECT COUNT(*) FROM menu`).Scan(&n)
	return n, err
}

func (s *MenuStore) ItemAtPosition(ctx context.Context, n int) (models.MenuItem, error) {
	if n < 1 {
		return models.MenuItem{}, ErrItemNotFound
	}
	var it models.MenuItem
	err := s.q.QueryRow(ctx, `
		SELECT id, name, price FROM menu
		ORDER BY id
		LIMIT 1 OFFSET $1`,
		n-1,
	).Scan(&it.ID, &it.Name, &it.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.MenuItem{}, ErrItemNotFound
		}
		return models.MenuItem{}, err
	}
	return it, nil
}

func (s *MenuStore) AddItem(ctx context.Context, name string, price int64) (int64, error) {
	if err := ValidateMenuItem(name, price); err != nil {
		return 0, err
	}
	var id int64
	err := s.q.QueryRow(ctx, `
		INSERT INTO menu (name, price) VALUES ($1, $2)
		RETURNING id`,
		strings.TrimSpace(name), price,
	).Scan(&id)
	return id, err
}

func (s *MenuStore) RemoveItem(ctx context.Context, id int64) error {
	tag, err := s.q.Exec(ctx, `DELETE FROM menu WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *MenuStore) SetPrice(ctx context.Context, id int64, price int64) error {
	if price < 0 {
		return ValidationError{Field: "price", Message: "must be at least 0"}
	}
	tag, err := s.q.Exec(ctx, `UPDATE menu SET price = $1 WHERE id = $2`, price, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}
