package views

import (
	"fmt"

	"storefront/internal/catalog"
	"storefront/internal/money"
	"storefront/internal/ui"
)

const (
	cardInfoHeight = 190
	categoryWidth  = 110
)

// shopNodes lays out the category filter and the product grid.
func (a *App) shopNodes(dst []*ui.Node, y float32) ([]*ui.Node, float32) {
	dst, y = title(dst, "Shop", y)

	filters := catalog.Filters()
	widths := make([]float32, len(filters))
	for i := range widths {
		widths[i] = categoryWidth
	}
	for i, cell := range ui.Row(margin, y, buttonH, gap, widths...) {
		c := filters[i]
		class := "category-btn"
		if c == a.m.Category() {
			class += " active"
		}
		dst = append(dst, ui.Button(class, c.String(), cell, func() { a.report(a.m.SelectCategory(c)) }))
	}
	y += buttonH + 2*gap

	products := a.m.VisibleProducts()
	if len(products) == 0 {
		dst = append(dst, ui.Label("muted", "No products in this category", ui.Rect{X: margin, Y: y, Width: 400, Height: lineHeight}))
		return dst, y + lineHeight
	}
	cardW := float32(max(a.cfg.Width, 240))
	previewH := float32(a.cfg.Height)
	area := ui.Rect{X: margin, Y: y, Width: a.screenW - 2*margin}
	cells := ui.Grid(area, cardW, previewH+cardInfoHeight, 2*gap, len(products))
	for i, p := range products {
		dst = a.cardNodes(dst, p, cells[i], previewH)
	}
	last := cells[len(cells)-1]
	return dst, last.Y + last.Height
}

// cardNodes appends one product card and records its preview area as the mount point.
func (a *App) cardNodes(dst []*ui.Node, p catalog.Product, cell ui.Rect, previewH float32) []*ui.Node {
	pv := ui.Rect{X: cell.X, Y: cell.Y, Width: cell.Width, Height: previewH}
	a.cards[p.ID] = pv

	view := &ui.Node{Type: "preview", Class: "product-3d", Bounds: pv}
	if _, ok := a.host.Session(p.ID); ok {
		view.Texture = p.ID
	}
	x, w := cell.X+gap, cell.Width-2*gap
	y := cell.Y + previewH + gap
	stock := fmt.Sprintf("Stock: %d", p.Stock)

	addText, addClass := "Add to Cart", "btn-primary"
	var add func()
	if !p.InStock() {
		addText, addClass = "Out of Stock", "btn-primary disabled"
	} else {
		id := p.ID
		add = func() { a.report(a.m.AddToCart(id)) }
	}
	button := ui.Button(addClass, addText, ui.Rect{X: x, Y: cell.Y + cell.Height - buttonH - gap, Width: w, Height: buttonH}, add)
	button.Disabled = !p.InStock()

	return append(dst,
		&ui.Node{Type: "panel", Class: "product-card", Bounds: cell},
		view,
		ui.Label("rotate-hint", "Drag to rotate", ui.Rect{X: pv.X + 8, Y: pv.Y + pv.Height - 30, Width: 140, Height: 24}),
		ui.Label("product-name", p.Glyph+" "+p.Name, ui.Rect{X: x, Y: y, Width: w, Height: lineHeight}),
		ui.Label("product-desc", p.Description, ui.Rect{X: x, Y: y + lineHeight, Width: w, Height: 40}),
		ui.Label("product-price", money.Format(p.Price), ui.Rect{X: x, Y: y + lineHeight + 44, Width: w / 2, Height: lineHeight}),
		ui.Label("product-stock", stock, ui.Rect{X: x + w/2, Y: y + lineHeight + 44, Width: w / 2, Height: lineHeight}),
		button,
	)
}
