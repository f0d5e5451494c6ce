package store

import (
	"errors"
	"sync"
	"time"

	"github.com/rasheduzzaman2024/polashtoli/internal/model"
)

// ErrEmptyCart is returned by Checkout when there is nothing to order.
var ErrEmptyCart = errors.New("cart is empty")

// Ledger is the append-only order record. Orders are never mutated or
// deleted after placement.
type Ledger struct {
	mu     sync.Mutex
	orders []model.Order
	lastID int64
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Checkout builds an order from a deep copy of the cart lines, stamps it and
// appends it. The caller is expected to clear the cart afterwards. An empty
// cart produces no order.
func (l *Ledger) Checkout(cart *model.Cart, email string) (model.Order, error) {
	if cart.IsEmpty() {
		return model.Order{}, ErrEmptyCart
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastID = timeID(l.lastID)
	order := model.Order{
		ID:            l.lastID,
		CustomerEmail: email,
		Items:         cart.Lines(),
		Total:         cart.Total(),
		Date:          time.Now(),
		Status:        model.OrderStatusPending,
	}
	l.orders = append(l.orders, order)
	return order, nil
}

// OrdersFor returns the orders placed by the given email, oldest first.
func (l *Ledger) OrdersFor(email string) []model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	matched := make([]model.Order, 0)
	for _, o := range l.orders {
		if o.CustomerEmail == email {
			matched = append(matched, o)
		}
	}
	return matched
}

// AllOrders returns the full ledger, oldest first.
func (l *Ledger) AllOrders() []model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	orders := make([]model.Order, len(l.orders))
	copy(orders, l.orders)
	return orders
}
