package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Color is a 0xRRGGBB value used only by the 3D preview.
type Color uint32

// RGB splits the color into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String formats the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// UnmarshalText accepts "#rrggbb", "0xrrggbb", or "rrggbb".
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 6 {
		return fmt.Errorf("catalog: color %q: want 6 hex digits", string(text))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("catalog: color %q: %w", string(text), err)
	}
	*c = Color(v)
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Product is one catalog entry. Price is exact decimal money; Stock and Price are never negative.
type Product struct {
	ID          int             `yaml:"id"`
	Name        string          `yaml:"name"`
	Price       decimal.Decimal `yaml:"price"`
	Category    Category        `yaml:"category"`
	Glyph       string          `yaml:"glyph"`
	Stock       int             `yaml:"stock"`
	Description string          `yaml:"description"`
	Color       Color           `yaml:"color"`
}

var (
	ErrNotFound        = errors.New("product not found")
	ErrDuplicateID     = errors.New("duplicate product id")
	ErrInvalidName     = errors.New("product name is required")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrNegativeStock   = errors.New("stock must not be negative")
	ErrUnknownCategory = errors.New("unknown category")
)

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Validate checks the invariants shared by seeding, admin create, and admin edit.
// The category is checked only when strict is true (admin input); seed data may carry
// categories outside the enumeration.
func (p Product) Validate(strict bool) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	if strict && !p.Category.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, p.Category)
	}
	return nil
}
