package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/cart"
)

// Order is the confirmation produced by a successful checkout. Nothing is charged or stored.
type Order struct {
	ID       uuid.UUID
	PlacedAt time.Time
	Customer string
	Email    string
	Card     string
	Lines    []cart.Line
	Total    decimal.Decimal
}

// Items is the number of units ordered.
func (o Order) Items() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Quantity
	}
	return n
}

// Place validates f against the cart contents and builds an order. The cart is not
// modified; clearing it is the caller's job once the confirmation has been shown.
func Place(f Form, c *cart.Cart, now time.Time) (Order, FieldErrors) {
	if fe := f.Validate(); fe != nil {
		return Order{}, fe
	}
	return Order{
		ID:       uuid.New(),
		PlacedAt: now,
		Customer: f.Name,
		Email:    f.Email,
		Card:     f.MaskedCard(),
		Lines:    c.Lines(),
		Total:    c.Total(),
	}, nil
}
