package ui

// Panel is a titled box of text lines, e.g. the order summary. It owns its nodes and
// rebuilds their text and bounds each time AppendNodes is called.
type Panel struct {
	class string
	panel *Node
	title *Node
	lines []*Node
}

// NewPanel creates a panel whose nodes are styled by ".<class>", ".<class>-title" and
// ".<class>-line".
func NewPanel(class, title string) *Panel {
	return &Panel{
		class: class,
		panel: NewNode("panel", class, "", ""),
		title: NewNode("label", class+"-title", "", title),
	}
}

// SetTitle changes the title text.
func (p *Panel) SetTitle(title string) {
	p.title.Text = title
}

// AppendNodes appends the panel at bounds with one label per line, lineHeight apart. When
// visible is false, dst is returned unchanged.
func (p *Panel) AppendNodes(dst []*Node, visible bool, bounds Rect, lineHeight float32, lines []string) []*Node {
	if !visible {
		return dst
	}
	for len(p.lines) < len(lines) {
		p.lines = append(p.lines, NewNode("label", p.class+"-line", "", ""))
	}
	p.panel.Bounds = bounds
	p.title.Bounds = Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: lineHeight}
	dst = append(dst, p.panel, p.title)
	for i, text := range lines {
		n := p.lines[i]
		n.Text = text
		n.Bounds = Rect{X: bounds.X, Y: bounds.Y + float32(i+1)*lineHeight, Width: bounds.Width, Height: lineHeight}
		dst = append(dst, n)
	}
	return dst
}
