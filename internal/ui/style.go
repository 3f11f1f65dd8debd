package ui

import (
	"image/color"
	"strconv"
	"strings"
)

// ComputedStyle holds resolved values used for drawing.
// LeftPct/TopPct: 0–100 for percentage positioning; -1 means use Left/Top as pixels.
// Padding is the offset (in pixels) from the node's left/top when drawing text.
type ComputedStyle struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	HasLeft    bool
	HasTop     bool
	LeftPct    int32 // -1 = not set
	TopPct     int32 // -1 = not set
	Padding    int32
	FontSize   int32
	Center     bool // text-align: center
}

// DefaultComputedStyle returns a minimal style (transparent background, dark text, no border, zero size).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Color:    color.RGBA{R: 33, G: 33, B: 33, A: 255},
		Border:   color.RGBA{A: 255},
		LeftPct:  -1,
		TopPct:   -1,
		Padding:  4,
		FontSize: 20,
	}
}

// ParseHexColor parses #RGB or #RRGGBB into a color (alpha 255). Returns black and false on parse error.
func ParseHexColor(s string) (color.RGBA, bool) {
	black := color.RGBA{A: 255}
	s = strings.TrimSpace(s)
	if s == "transparent" {
		return color.RGBA{}, true
	}
	if len(s) < 4 || s[0] != '#' {
		return black, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexByte(hex[i]); !ok {
			return black, false
		}
	}
	nib := func(i int) uint8 {
		v, _ := hexByte(hex[i])
		return v
	}
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		return color.RGBA{R: nib(0) * 17, G: nib(1) * 17, B: nib(2) * 17, A: 255}, true
	case 6:
		return color.RGBA{R: nib(0)<<4 + nib(1), G: nib(2)<<4 + nib(3), B: nib(4)<<4 + nib(5), A: 255}, true
	}
	return black, false
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0–100). Used for left/top percentage positioning.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map (e.g. from matching rules).
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background", "background-color":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border", "border-color":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left, out.HasLeft = n, true
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top, out.HasTop = n, true
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "text-align":
			out.Center = v == "center"
		}
	}
	return out
}
