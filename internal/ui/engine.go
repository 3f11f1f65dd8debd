package ui

import (
	"fmt"
	"image/color"
	"os"
)

// Renderer is the drawing backend. The raylib implementation lives in internal/views; tests
// record calls instead.
type Renderer interface {
	FillRect(r Rect, c color.RGBA)
	StrokeRect(r Rect, c color.RGBA)
	Text(s string, x, y float32, size int32, c color.RGBA)
	MeasureText(s string, size int32) float32
	// Preview draws the preview texture for key stretched over r.
	Preview(key int, r Rect)
}

// Element states used as CSS pseudo-classes.
const (
	StateNormal   = ""
	StateHover    = "hover"
	StateDisabled = "disabled"
)

// Engine holds the current stylesheet and nodes and draws them through a Renderer.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached per (selector identity, state) and dropped when the sheet changes.
type Engine struct {
	sheet   *Stylesheet
	nodes   []*Node
	styles  map[string]ComputedStyle
	screenW int32
	screenH int32
	pointer [2]float32
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{styles: make(map[string]ComputedStyle)}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet; on error
// the previous one stays.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return fmt.Errorf("ui: %s: %w", path, err)
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	clear(e.styles)
}

// HasStylesheet returns whether a stylesheet with rules is loaded.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// SetScreen sets the size used for percentage positioning.
func (e *Engine) SetScreen(w, h int32) {
	e.screenW, e.screenH = w, h
}

// SetPointer records the pointer position used for :hover.
func (e *Engine) SetPointer(x, y float32) {
	e.pointer = [2]float32{x, y}
}

// SetNodes replaces all nodes and resolves their bounds from style.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	for _, n := range nodes {
		e.resolveBounds(n, e.Style(n, StateNormal))
	}
}

// Nodes returns the current nodes in draw order.
func (e *Engine) Nodes() []*Node {
	return e.nodes
}

// Style returns the computed style of n in state. Later rules override earlier; state
// rules apply on top of the base rules.
func (e *Engine) Style(n *Node, state string) ComputedStyle {
	key := n.Type + "|" + n.Class + "|" + n.ID + "|" + state
	if cs, ok := e.styles[key]; ok {
		return cs
	}
	merged := make(map[string]string)
	if e.sheet != nil {
		for _, pass := range []string{StateNormal, state} {
			for _, rule := range e.sheet.Rules {
				if rule.Selector.State == pass && rule.Selector.Matches(n, pass) {
					for k, v := range rule.Props {
						merged[k] = v
					}
				}
			}
			if state == StateNormal {
				break
			}
		}
	}
	cs := ResolveProps(merged)
	e.styles[key] = cs
	return cs
}

// resolveBounds lets the stylesheet override layout: size when width/height are set,
// position only when left/top are set.
func (e *Engine) resolveBounds(n *Node, style ComputedStyle) {
	if style.Width > 0 {
		n.Bounds.Width = float32(style.Width)
	}
	if style.Height > 0 {
		n.Bounds.Height = float32(style.Height)
	}
	if style.HasLeft {
		n.Bounds.X = float32(style.Left)
	}
	if style.HasTop {
		n.Bounds.Y = float32(style.Top)
	}
	if style.LeftPct >= 0 {
		n.Bounds.X = (float32(e.screenW) - n.Bounds.Width) * float32(style.LeftPct) / 100
	}
	if style.TopPct >= 0 {
		n.Bounds.Y = (float32(e.screenH) - n.Bounds.Height) * float32(style.TopPct) / 100
	}
}

func (e *Engine) state(n *Node) string {
	switch {
	case n.Disabled:
		return StateDisabled
	case n.Action != nil && n.Bounds.Contains(e.pointer[0], e.pointer[1]):
		return StateHover
	}
	return StateNormal
}

// Draw draws all nodes: background, border, preview texture, then text.
func (e *Engine) Draw(r Renderer) {
	for _, n := range e.nodes {
		style := e.Style(n, e.state(n))
		b := n.Bounds
		if style.Background.A > 0 {
			r.FillRect(b, style.Background)
		}
		if n.Texture != 0 {
			r.Preview(n.Texture, b)
		}
		if style.HasBorder && b.Width > 0 && b.Height > 0 {
			r.StrokeRect(b, style.Border)
		}
		if n.Text == "" {
			continue
		}
		pad := float32(style.Padding)
		x := b.X + pad
		if style.Center {
			x = b.X + (b.Width-r.MeasureText(n.Text, style.FontSize))/2
		}
		r.Text(n.Text, x, b.Y+pad, style.FontSize, style.Color)
	}
}

// Click runs the action of the topmost clickable node under (x, y) and reports whether one ran.
func (e *Engine) Click(x, y float32) bool {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if n.Clickable() && n.Bounds.Contains(x, y) {
			n.Action()
			return true
		}
	}
	return false
}

// HitTest returns the topmost node under (x, y), or nil.
func (e *Engine) HitTest(x, y float32) *Node {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		if e.nodes[i].Bounds.Contains(x, y) {
			return e.nodes[i]
		}
	}
	return nil
}
