// Package geometry maps a product category to a composite shape: a fixed arrangement of
// primitive solids sharing one material. Shapes are plain data; internal/primitives turns
// them into meshes.
package geometry

import "storefront/internal/catalog"

//go:generate go tool stringer -type=Kind

// Kind is a primitive solid.
type Kind int

const (
	Box Kind = iota
	Cylinder
	Cone
)

// Part is one primitive placed relative to the shape origin.
// Box uses Width/Height/Depth. Cylinder uses RadiusTop/RadiusBottom/Height/Segments.
// Cone uses RadiusBottom/Height/Segments.
type Part struct {
	Name         string
	Kind         Kind
	Width        float32
	Height       float32
	Depth        float32
	RadiusTop    float32
	RadiusBottom float32
	Segments     int
	Offset       [3]float32
}

// Material is shared by every part of a shape. Shading is always lit (ambient + diffuse +
// specular); Shininess is the specular exponent.
type Material struct {
	Color     catalog.Color
	Shininess float32
}

// Shape is a named group of parts forming one product preview.
type Shape struct {
	Name     string
	Parts    []Part
	Material Material
}

// Composite names, one per branch of Build.
const (
	ShapeTop       = "top"
	ShapeBottom    = "bottom"
	ShapeDress     = "dress"
	ShapeOuterwear = "outerwear"
	ShapeDefault   = "default"
)

// Shininess per composite.
const (
	shininessTop       = 30
	shininessBottom    = 20
	shininessDress     = 40
	shininessOuterwear = 50
	shininessDefault   = 60
)

// Build returns the composite for category, colored with color. The mapping is total:
// Footwear and any category outside the enumeration get the two-block default.
func Build(category catalog.Category, color catalog.Color) Shape {
	switch category {
	case catalog.Tops:
		return garment(ShapeTop, color, shininessTop,
			box("torso", 1.5, 1.8, 0.3, 0, 0),
			box("sleeve-left", 0.4, 0.8, 0.3, -0.95, 0.5),
			box("sleeve-right", 0.4, 0.8, 0.3, 0.95, 0.5))
	case catalog.Bottoms:
		return garment(ShapeBottom, color, shininessBottom,
			leg("leg-left", -0.35),
			leg("leg-right", 0.35))
	case catalog.Dresses:
		return garment(ShapeDress, color, shininessDress,
			Part{Name: "skirt", Kind: Cone, RadiusBottom: 1, Height: 2.5, Segments: 32})
	case catalog.Outerwear:
		return garment(ShapeOuterwear, color, shininessOuterwear,
			box("torso", 1.8, 2, 0.4, 0, 0),
			box("sleeve-left", 0.5, 1.5, 0.4, -1.15, 0.25),
			box("sleeve-right", 0.5, 1.5, 0.4, 1.15, 0.25))
	default:
		return garment(ShapeDefault, color, shininessDefault,
			box("block-left", 0.6, 0.4, 1, -0.5, 0),
			box("block-right", 0.6, 0.4, 1, 0.5, 0))
	}
}

// ForProduct builds the preview shape of p.
func ForProduct(p catalog.Product) Shape {
	return Build(p.Category, p.Color)
}

func garment(name string, color catalog.Color, shininess float32, parts ...Part) Shape {
	return Shape{Name: name, Parts: parts, Material: Material{Color: color, Shininess: shininess}}
}

func box(name string, w, h, d, x, y float32) Part {
	return Part{Name: name, Kind: Box, Width: w, Height: h, Depth: d, Offset: [3]float32{x, y, 0}}
}

func leg(name string, x float32) Part {
	return Part{Name: name, Kind: Cylinder, RadiusTop: 0.3, RadiusBottom: 0.25, Height: 2, Segments: 16, Offset: [3]float32{x, 0, 0}}
}

// Key identifies the shape a product needs. Two products with the same key render the
// same way; a change of key means an existing preview must be rebuilt.
type Key struct {
	Category catalog.Category
	Color    catalog.Color
}

// KeyOf returns the preview key of p.
func KeyOf(p catalog.Product) Key {
	return Key{Category: p.Category, Color: p.Color}
}
