package ui

import "strings"

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Node is a single UI element: panel, label, button, or preview. It has optional classes and
// id for CSS matching, bounds, and optional text. Buttons carry an Action run on click.
type Node struct {
	Type     string // "panel", "label", "button", "preview"
	Class    string // space separated, e.g. "nav active"
	ID       string
	Bounds   Rect
	Text     string
	Action   func()
	Disabled bool
	// Texture is the preview key drawn inside a "preview" node (0 = none).
	Texture int
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// Button creates a clickable node.
func Button(class, text string, bounds Rect, action func()) *Node {
	return &Node{Type: "button", Class: class, Text: text, Bounds: bounds, Action: action}
}

// Label creates a text node.
func Label(class, text string, bounds Rect) *Node {
	return &Node{Type: "label", Class: class, Text: text, Bounds: bounds}
}

// HasClass reports whether c is one of the node's classes.
func (n *Node) HasClass(c string) bool {
	for _, have := range strings.Fields(n.Class) {
		if have == c {
			return true
		}
	}
	return false
}

// Clickable reports whether the node reacts to clicks.
func (n *Node) Clickable() bool {
	return n.Action != nil && !n.Disabled
}
