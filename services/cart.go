package services

import (
	"context"

	"cafe-pos/models"
)

// Cart accumulates a customer's order lines. When an OrderLog is set every
// line is also written to it; a failed write does not remove the line from
// the cart, so the cart and the persisted log can diverge.
type Cart struct {
	customer models.Customer
	orders   OrderLog
	lines    []models.OrderLine
	total    int64
}

// NewCart creates an empty cart. orders may be nil to disable persistence.
func NewCart(customer models.Customer, orders OrderLog) *Cart {
	return &Cart{customer: customer, orders: orders}
}

func (c *Cart) AddLine(ctx context.Context, item models.MenuItem, quantity int) (models.OrderLine, error) {
	if err := validateStruct(OrderLineInput{ItemName: item.Name, Quantity: quantity}); err != nil {
		return models.OrderLine{}, err
	}

	line := models.OrderLine{
		ItemName:  item.Name,
		Quantity:  quantity,
		UnitPrice: item.Price,
		LineTotal: item.Price * int64(quantity),
	}
	c.lines = append(c.lines, line)
	c.total += line.LineTotal

	if c.orders != nil {
		if err := c.orders.InsertOrderLine(ctx, c.customer.ID, line); err != nil {
			return line, &PersistError{Op: "insert order line", Err: err}
		}
	}
	return line, nil
}

// Finalize returns a snapshot of the cart. The cart itself is left untouched.
func (c *Cart) Finalize() models.Bill {
	lines := make([]models.OrderLine, len(c.lines))
	copy(lines, c.lines)
	return models.Bill{
		CustomerName: c.customer.Name,
		Mobile:       c.customer.Mobile,
		Lines:        lines,
		Total:        c.total,
	}
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Total() int64 {
	return c.total
}
