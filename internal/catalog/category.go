package catalog

import "strings"

// Category is the product category used for filtering and for choosing a preview shape.
// Values outside the enumerated set are legal on a Product (they render with the default
// shape) but cannot be created through the admin surface.
type Category string

const (
	Tops      Category = "Tops"
	Bottoms   Category = "Bottoms"
	Dresses   Category = "Dresses"
	Outerwear Category = "Outerwear"
	Footwear  Category = "Footwear"

	// All is the identity filter; it is never a product's category.
	All Category = "All"
)

// Categories returns the product categories in display order (without All).
func Categories() []Category {
	return []Category{Tops, Bottoms, Dresses, Outerwear, Footwear}
}

// Filters returns the category buttons shown above the grid: All followed by Categories.
func Filters() []Category {
	return append([]Category{All}, Categories()...)
}

var categoryAliases = map[string]Category{
	"all":       All,
	"tops":      Tops,
	"top":       Tops,
	"bottoms":   Bottoms,
	"bottom":    Bottoms,
	"dresses":   Dresses,
	"dress":     Dresses,
	"outerwear": Outerwear,
	"footwear":  Footwear,
	"shoes":     Footwear,
}

// ParseCategory resolves a user-typed name ("tops", "Dress", "ALL") to a Category.
func ParseCategory(s string) (Category, bool) {
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}

// Known reports whether c is one of the enumerated product categories.
func (c Category) Known() bool {
	for _, k := range Categories() {
		if c == k {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
