package ui

// Grid lays out n cells of cellW×cellH left to right, top to bottom inside area, with gap
// pixels between cells. At least one column is used even when area is narrower than a cell.
func Grid(area Rect, cellW, cellH, gap float32, n int) []Rect {
	cols := int((area.Width + gap) / (cellW + gap))
	if cols < 1 {
		cols = 1
	}
	out := make([]Rect, n)
	for i := range out {
		col, row := i%cols, i/cols
		out[i] = Rect{
			X:      area.X + float32(col)*(cellW+gap),
			Y:      area.Y + float32(row)*(cellH+gap),
			Width:  cellW,
			Height: cellH,
		}
	}
	return out
}

// Row lays out widths left to right from (x, y) with gap between them, all of height h.
func Row(x, y, h, gap float32, widths ...float32) []Rect {
	out := make([]Rect, len(widths))
	for i, w := range widths {
		out[i] = Rect{X: x, Y: y, Width: w, Height: h}
		x += w + gap
	}
	return out
}
