package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidMobile(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"9876543210", true},
		{"0000000000", true},
		{"12345", false},
		{"12345678901", false},
		{"123-456-7890", false},
		{"+919876543210", false},
		{"+987654321", false},
		{"98765 43210", false},
		{" 9876543210", false},
		{"987654321a", false},
		{"", false},
		{"٩٨٧٦٥٤٣٢١٠", false}, // non-ASCII digits
	}
	for _, tt := range tests {
		got := ValidMobile(tt.in)
		if got != tt.want {
			t.Errorf("ValidMobile(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateMenuItem(t *testing.T) {
	tests := []struct {
		name      string
		itemName  string
		price     int64
		wantField string
	}{
		{"valid", "Coffee", 50, ""},
		{"free item", "Water", 0, ""},
		{"empty name", "", 10, "name"},
		{"blank name", "   ", 10, "name"},
		{"negative price", "Tea", -1, "price"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMenuItem(tt.itemName, tt.price)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr ValidationError
			require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

type countingCustomers struct {
	calls int
	id    int64
	err   error
}

func (c *countingCustomers) InsertCustomer(ctx context.Context, name, mobile string) (int64, error) {
	c.calls++
	return c.id, c.err
}

func TestRegistrar_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects bad mobiles before persisting", func(t *testing.T) {
		store := &countingCustomers{id: 7}
		r := NewRegistrar(store)
		for _, mobile := range []string{"12345", "12345678901", "123-456-7890"} {
			_, err := r.Register(ctx, "Asha", mobile)
			var verr ValidationError
			require.True(t, errors.As(err, &verr), "mobile %q: want ValidationError, got %v", mobile, err)
			assert.Equal(t, "mobile", verr.Field)
		}
		assert.Equal(t, 0, store.calls)
	})

	t.Run("accepts ten digits", func(t *testing.T) {
		store := &countingCustomers{id: 7}
		id, err := NewRegistrar(store).Register(ctx, "Asha", "9876543210")
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.Equal(t, 1, store.calls)
	})

	t.Run("no id produced", func(t *testing.T) {
		_, err := NewRegistrar(&countingCustomers{}).Register(ctx, "Asha", "9876543210")
		assert.ErrorIs(t, err, ErrNoCustomerID)
	})

	t.Run("store failure", func(t *testing.T) {
		boom := errors.New("connection refused")
		_, err := NewRegistrar(&countingCustomers{err: boom}).Register(ctx, "Asha", "9876543210")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("memory store assigns increasing ids", func(t *testing.T) {
		r := NewRegistrar(NewMemoryStore())
		a, err := r.Register(ctx, "A", "1111111111")
		require.NoError(t, err)
		b, err := r.Register(ctx, "B", "2222222222")
		require.NoError(t, err)
		assert.Greater(t, b, a)
	})
}
