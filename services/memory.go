package services

import (
	"context"
	"strings"

	"cafe-pos/models"
)

type memoryAdmin struct {
	username string
	hash     string
}

type memoryOrder struct {
	customerID int64
	line       models.OrderLine
}

// MemoryStore keeps the catalog, customers, admins and order log in process
// memory. It backs STORE=memory and the console tests.
type MemoryStore struct {
	menu       []models.MenuItem // ascending id
	nextItemID int64

	customers      []models.Customer
	nextCustomerID int64

	admins []memoryAdmin
	orders []memoryOrder
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, len(m.menu))
	copy(items, m.menu)
	return items, nil
}

func (m *MemoryStore) ItemCount(ctx context.Context) (int, error) {
	return len(m.menu), nil
}

func (m *MemoryStore) ItemAtPosition(ctx context.Context, n int) (models.MenuItem, error) {
	if n < 1 || n > len(m.menu) {
		return models.MenuItem{}, ErrItemNotFound
	}
	return m.menu[n-1], nil
}

func (m *MemoryStore) AddItem(ctx context.Context, name string, price int64) (int64, error) {
	if err := ValidateMenuItem(name, price); err != nil {
		return 0, err
	}
	m.nextItemID++
	m.menu = append(m.menu, models.MenuItem{ID: m.nextItemID, Name: strings.TrimSpace(name), Price: price})
	return m.nextItemID, nil
}

func (m *MemoryStore) RemoveItem(ctx context.Context, id int64) error {
	i := m.indexOf(id)
	if i < 0 {
		return ErrItemNotFound
	}
	m.menu = append(m.menu[:i], m.menu[i+1:]...)
	return nil
}

func (m *MemoryStore) SetPrice(ctx context.Context, id int64, price int64) error {
	if price < 0 {
		return ValidationError{Field: "price", Message: "must be at least 0"}
	}
	i := m.indexOf(id)
	if i < 0 {
		return ErrItemNotFound
	}
	m.menu[i].Price = price
	return nil
}

func (m *MemoryStore) indexOf(id int64) int {
	for i, it := range m.menu {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (m *MemoryStore) InsertCustomer(ctx context.Context, name, mobile string) (int64, error) {
	m.nextCustomerID++
	m.customers = append(m.customers, models.Customer{ID: m.nextCustomerID, Name: name, Mobile: mobile})
	return m.nextCustomerID, nil
}

func (m *MemoryStore) Authenticate(ctx context.Context, username, password string) (bool, error) {
	for _, a := range m.admins {
		if a.username == username {
			return checkPassword(a.hash, password), nil
		}
	}
	return false, nil
}

func (m *MemoryStore) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	if len(m.admins) > 0 {
		return nil
	}
	return m.AddAdmin(ctx, username, password)
}

func (m *MemoryStore) AddAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ValidationError{Field: "username", Message: "is required"}
	}
	for _, a := range m.admins {
		if a.username == username {
			return ErrAdminExists
		}
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	m.admins = append(m.admins, memoryAdmin{username: username, hash: hash})
	return nil
}

func (m *MemoryStore) InsertOrderLine(ctx context.Context, customerID int64, line models.OrderLine) error {
	m.orders = append(m.orders, memoryOrder{customerID: customerID, line: line})
	return nil
}

// OrderLines returns the persisted lines of one customer in insertion order.
func (m *MemoryStore) OrderLines(customerID int64) []models.OrderLine {
	var out []models.OrderLine
	for _, o := range m.orders {
		if o.customerID == customerID {
			out = append(out, o.line)
		}
	}
	return out
}
