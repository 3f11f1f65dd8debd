// Package cart holds the shopper's cart: product snapshots with quantities.
package cart

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"storefront/internal/catalog"
)

var ErrOutOfStock = errors.New("product is out of stock")

// Line is one cart entry. Product is a snapshot taken when the line was created, so later
// admin edits do not change what is already in the cart.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Subtotal is price × quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered list of lines with unique product ids and quantities ≥ 1.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

func (c *Cart) index(id int) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.Product.ID == id })
}

// Add puts one unit of p in the cart. A repeated add of the same id increments the
// existing line instead of creating a second one.
func (c *Cart) Add(p catalog.Product) (Line, error) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return c.lines[i], nil
	}
	if !p.InStock() {
		return Line{}, fmt.Errorf("%s: %w", p.Name, ErrOutOfStock)
	}
	var snap catalog.Product
	if err := copier.Copy(&snap, &p); err != nil {
		return Line{}, fmt.Errorf("cart: snapshot product %d: %w", p.ID, err)
	}
	l := Line{Product: snap, Quantity: 1}
	c.lines = append(c.lines, l)
	return l, nil
}

// Remove drops the line for id. It reports whether a line was removed.
func (c *Cart) Remove(id int) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	return true
}

// UpdateQuantity adds delta to the line's quantity, clamping at a floor of 1. It never
// removes a line. Unknown ids are ignored and reported with ok == false.
func (c *Cart) UpdateQuantity(id, delta int) (qty int, ok bool) {
	i := c.index(id)
	if i < 0 {
		return 0, false
	}
	c.lines[i].Quantity = max(1, c.lines[i].Quantity+delta)
	return c.lines[i].Quantity, true
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

// Quantity returns the quantity for id, or 0.
func (c *Cart) Quantity(id int) int {
	if i := c.index(id); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Count is the badge number: the sum of all quantities.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total is Σ price × quantity.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.lines = nil
}
