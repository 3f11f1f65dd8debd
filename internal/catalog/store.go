package catalog

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/shopspring/decimal"
)

// Store is the single shared product list. It is not safe for concurrent use; the app
// mutates it only from the frame loop.
type Store struct {
	products []Product
	rev      uint64
}

// NewStore returns a store holding a copy of products in the given order.
func NewStore(products []Product) *Store {
	return &Store{products: slices.Clone(products)}
}

// Revision increases on every mutation. Views compare it to decide whether to re-layout.
func (s *Store) Revision() uint64 {
	return s.rev
}

// List returns a copy of every product in catalog order.
func (s *Store) List() []Product {
	return slices.Clone(s.products)
}

// Len returns the number of products.
func (s *Store) Len() int {
	return len(s.products)
}

// Filter returns the products visible under category c, order preserved. All returns everything.
func (s *Store) Filter(c Category) []Product {
	if c == All || c == "" {
		return s.List()
	}
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// Get looks up a product by id.
func (s *Store) Get(id int) (Product, error) {
	i := s.index(id)
	if i < 0 {
		return Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return s.products[i], nil
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.products, func(p Product) bool { return p.ID == id })
}

// NextID returns max(id)+1, or 1 for an empty store.
func (s *Store) NextID() int {
	next := 1
	for _, p := range s.products {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// Draft is the admin "add product" form.
type Draft struct {
	Name        string
	Price       decimal.Decimal
	Category    Category
	Glyph       string
	Stock       int
	Description string
}

// Create appends a product built from d. The id is NextID and the color is random.
func (s *Store) Create(d Draft) (Product, error) {
	p := Product{
		ID:          s.NextID(),
		Name:        d.Name,
		Price:       d.Price,
		Category:    d.Category,
		Glyph:       d.Glyph,
		Stock:       d.Stock,
		Description: d.Description,
		Color:       Color(rand.Uint32() & 0xffffff),
	}
	if err := p.Validate(true); err != nil {
		return Product{}, err
	}
	s.products = append(s.products, p)
	s.rev++
	return p, nil
}

// Patch carries the fields admin edit may change. Nil fields are left alone.
type Patch struct {
	Name        *string
	Price       *decimal.Decimal
	Stock       *int
	Description *string
	Category    *Category
}

// Empty reports whether the patch changes nothing.
func (pt Patch) Empty() bool {
	return pt.Name == nil && pt.Price == nil && pt.Stock == nil && pt.Description == nil && pt.Category == nil
}

// Update applies pt to the product with the given id in place.
func (s *Store) Update(id int, pt Patch) (Product, error) {
	i := s.index(id)
	if i < 0 {
		return Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	p := s.products[i]
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Price != nil {
		p.Price = *pt.Price
	}
	if pt.Stock != nil {
		p.Stock = *pt.Stock
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	strict := false
	if pt.Category != nil {
		p.Category = *pt.Category
		strict = true
	}
	if err := p.Validate(strict); err != nil {
		return Product{}, err
	}
	s.products[i] = p
	s.rev++
	return p, nil
}

// Delete removes the product with the given id.
func (s *Store) Delete(id int) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	s.products = slices.Delete(s.products, i, i+1)
	s.rev++
	return nil
}
