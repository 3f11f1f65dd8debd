package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestDefaultSeed(t *testing.T) {
	products := DefaultSeed()
	require.Len(t, products, 6)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(products))

	first := products[0]
	assert.Equal(t, "Classic White T-Shirt", first.Name)
	assert.True(t, decimal.RequireFromString("29.99").Equal(first.Price))
	assert.Equal(t, Tops, first.Category)
	assert.Equal(t, Color(0xffffff), first.Color)
	assert.Equal(t, Color(0x2f1b0c), products[3].Color)
}

func TestParseSeedRejectsDuplicates(t *testing.T) {
	_, err := ParseSeed([]byte(`
products:
  - {id: 1, name: a, price: "1", category: Tops}
  - {id: 1, name: b, price: "2", category: Tops}
`))
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestParseSeedRejectsNegativePrice(t *testing.T) {
	_, err := ParseSeed([]byte(`
products:
  - {id: 1, name: a, price: "-1", category: Tops}
`))
	require.ErrorIs(t, err, ErrNegativePrice)
}

func TestFilter(t *testing.T) {
	s := NewStore(DefaultSeed())

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(s.Filter(All)))
	assert.Equal(t, []int{1, 6}, ids(s.Filter(Tops)))
	assert.Equal(t, []int{5}, ids(s.Filter(Footwear)))
	assert.Empty(t, s.Filter(Category("Hats")))
}

func TestFilterDoesNotAlias(t *testing.T) {
	s := NewStore(DefaultSeed())
	all := s.Filter(All)
	all[0].Name = "changed"
	p, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Classic White T-Shirt", p.Name)
}

func TestCreateAssignsNextID(t *testing.T) {
	s := NewStore(DefaultSeed())
	require.NoError(t, s.Delete(3))

	p, err := s.Create(Draft{Name: "Scarf", Price: decimal.RequireFromString("15.50"), Category: Outerwear, Stock: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, p.ID)
	assert.LessOrEqual(t, uint32(p.Color), uint32(0xffffff))
	assert.Equal(t, []int{1, 2, 4, 5, 6, 7}, ids(s.List()))

	empty := NewStore(nil)
	assert.Equal(t, 1, empty.NextID())
}

func TestCreateValidates(t *testing.T) {
	s := NewStore(nil)
	_, err := s.Create(Draft{Name: "", Category: Tops})
	assert.ErrorIs(t, err, ErrInvalidName)
	_, err = s.Create(Draft{Name: "x", Category: Tops, Stock: -1})
	assert.ErrorIs(t, err, ErrNegativeStock)
	_, err = s.Create(Draft{Name: "x", Category: "Hats"})
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Revision())
}

func TestUpdate(t *testing.T) {
	s := NewStore(DefaultSeed())
	name := "Linen Shirt"
	price := decimal.RequireFromString("39.00")
	p, err := s.Update(1, Patch{Name: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Linen Shirt", p.Name)
	assert.Equal(t, 15, p.Stock)

	got, _ := s.Get(1)
	assert.Equal(t, p, got)

	stock := -4
	_, err = s.Update(1, Patch{Stock: &stock})
	assert.ErrorIs(t, err, ErrNegativeStock)
	got, _ = s.Get(1)
	assert.Equal(t, 15, got.Stock)

	_, err = s.Update(99, Patch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := NewStore(DefaultSeed())
	rev := s.Revision()
	require.NoError(t, s.Delete(2))
	assert.Greater(t, s.Revision(), rev)
	_, err := s.Get(2)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(2), ErrNotFound)
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]Category{"tops": Tops, "Dress": Dresses, " ALL ": All, "shoes": Footwear} {
		got, ok := ParseCategory(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseCategory("hats")
	assert.False(t, ok)
}

func TestColorText(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("0x4169E1")))
	assert.Equal(t, Color(0x4169e1), c)
	r, g, b := c.RGB()
	assert.Equal(t, []uint8{0x41, 0x69, 0xe1}, []uint8{r, g, b})
	assert.Equal(t, "#4169e1", c.String())
	assert.Error(t, c.UnmarshalText([]byte("#fff")))
}
