package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/catalog"
)

func kinds(s Shape) []Kind {
	out := make([]Kind, len(s.Parts))
	for i, p := range s.Parts {
		out[i] = p.Kind
	}
	return out
}

func TestBuildMapping(t *testing.T) {
	for _, tc := range []struct {
		category  catalog.Category
		name      string
		kinds     []Kind
		shininess float32
	}{
		{catalog.Tops, ShapeTop, []Kind{Box, Box, Box}, 30},
		{catalog.Bottoms, ShapeBottom, []Kind{Cylinder, Cylinder}, 20},
		{catalog.Dresses, ShapeDress, []Kind{Cone}, 40},
		{catalog.Outerwear, ShapeOuterwear, []Kind{Box, Box, Box}, 50},
		{catalog.Footwear, ShapeDefault, []Kind{Box, Box}, 60},
	} {
		s := Build(tc.category, 0x123456)
		assert.Equal(t, tc.name, s.Name, tc.category)
		assert.Equal(t, tc.kinds, kinds(s), tc.category)
		assert.Equal(t, tc.shininess, s.Material.Shininess, tc.category)
		assert.Equal(t, catalog.Color(0x123456), s.Material.Color, tc.category)
	}
}

func TestUnknownCategoryGetsDefault(t *testing.T) {
	want := Build(catalog.Footwear, 0xff4500)
	for _, c := range []catalog.Category{"", "Hats", "tops", catalog.All} {
		got := Build(c, 0xff4500)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Build(%q) mismatch (-want +got):\n%s", c, diff)
		}
	}
}

func TestSleevesMirror(t *testing.T) {
	for _, c := range []catalog.Category{catalog.Tops, catalog.Outerwear, catalog.Bottoms, catalog.Footwear} {
		s := Build(c, 0)
		left, right := s.Parts[len(s.Parts)-2], s.Parts[len(s.Parts)-1]
		assert.Equal(t, -left.Offset[0], right.Offset[0], c)
		assert.Equal(t, left.Offset[1], right.Offset[1], c)
	}
}

func TestOuterwearLargerThanTop(t *testing.T) {
	top := Build(catalog.Tops, 0)
	coat := Build(catalog.Outerwear, 0)
	require.Len(t, coat.Parts, len(top.Parts))
	for i := range top.Parts {
		assert.Greater(t, coat.Parts[i].Width, top.Parts[i].Width)
		assert.Greater(t, coat.Parts[i].Height, top.Parts[i].Height)
		assert.Greater(t, coat.Parts[i].Depth, top.Parts[i].Depth)
	}
}

func TestKeyOf(t *testing.T) {
	p := catalog.Product{ID: 1, Category: catalog.Tops, Color: 0xffffff}
	q := p
	q.Name = "renamed"
	assert.Equal(t, KeyOf(p), KeyOf(q))
	q.Category = catalog.Dresses
	assert.NotEqual(t, KeyOf(p), KeyOf(q))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Cylinder", Cylinder.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
