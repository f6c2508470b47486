package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cafe-pos/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const pgUniqueViolation = "23505"

// HashPassword returns a bcrypt hash of the plain password for storing in DB.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func checkPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

type AdminStore struct {
	q db.Querier
}

func NewAdminStore(q db.Querier) *AdminStore {
	return &AdminStore{q: q}
}

// Authenticate returns true iff an admin with this username exists and the password matches its hash.
func (s *AdminStore) Authenticate(ctx context.Context, username, password string) (bool, error) {
	var hash string
	err := s.q.QueryRow(ctx, `SELECT password FROM admins WHERE username = $1`, username).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return checkPassword(hash, password), nil
}

// EnsureDefaultAdmin inserts the bootstrap account only when the admins table is empty.
func (s *AdminStore) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.q.Exec(ctx, `
		INSERT INTO admins (username, password)
		SELECT $1, $2 WHERE NOT EXISTS (SELECT 1 FROM admins)`,
		username, hash,
	)
	return err
}

func (s *AdminStore) AddAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ValidationError{Field: "username", Message: "is required"}
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.q.Exec(ctx, `INSERT INTO admins (username, password) VALUES ($1, $2)`, username, hash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrAdminExists
		}
		return err
	}
	return nil
}
