package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/catalog"
	"storefront/internal/money"
	"storefront/internal/ui"
)

const adminRowHeight = 48

// adminNodes lays out the add (or edit) form and the product table.
func (a *App) adminNodes(dst []*ui.Node, y float32) ([]*ui.Node, float32) {
	dst, y = title(dst, "Admin Dashboard", y)

	if a.editing != 0 {
		dst = append(dst, ui.Label("section-title", fmt.Sprintf("Edit product #%d", a.editing), ui.Rect{X: margin, Y: y, Width: 400, Height: lineHeight}))
		y += lineHeight + gap
		dst, y = a.fieldNodes(dst, a.edit, margin, y, nil)
		for i, cell := range ui.Row(margin, y, buttonH, gap, 170, 170) {
			if i == 0 {
				dst = append(dst, ui.Button("btn-primary", "Save", cell, a.submitEdit))
			} else {
				dst = append(dst, ui.Button("btn-secondary", "Cancel", cell, a.cancelEdit))
			}
		}
	} else {
		dst = append(dst, ui.Label("section-title", "Add Product", ui.Rect{X: margin, Y: y, Width: 400, Height: lineHeight}))
		y += lineHeight + gap
		dst, y = a.fieldNodes(dst, a.product, margin, y, nil)
		dst = append(dst,
			ui.Label("field-label", "Category", ui.Rect{X: margin, Y: y, Width: fieldWidth, Height: 22}),
			ui.Button("input", a.newCat.String()+"  ▸", ui.Rect{X: margin, Y: y + 24, Width: fieldWidth, Height: fieldHeight}, a.cycleCategory),
		)
		y += 24 + fieldHeight + 2*gap
		dst = append(dst, ui.Button("btn-primary", "Add Product", ui.Rect{X: margin, Y: y, Width: fieldWidth, Height: buttonH}, a.submitProduct))
	}
	y += buttonH + 2*margin

	cols := []float32{420, 140, 120, 90, 200}
	for i, h := range ui.Row(margin, y, lineHeight, gap, cols...) {
		dst = append(dst, ui.Label("table-head", []string{"Product", "Category", "Price", "Stock", "Actions"}[i], h))
	}
	y += lineHeight + gap
	for _, p := range a.m.Catalog().List() {
		cells := ui.Row(margin, y, buttonH, gap, cols...)
		id := p.ID
		deleteText := "Delete"
		if a.deleting == id {
			deleteText = "Confirm?"
		}
		actions := ui.Row(cells[4].X, y, buttonH, gap, 90, 98)
		dst = append(dst,
			&ui.Node{Type: "panel", Class: "table-row", Bounds: ui.Rect{X: margin, Y: y - 4, Width: a.screenW - 2*margin, Height: adminRowHeight}},
			ui.Label("cell", p.Glyph+" "+p.Name, cells[0]),
			ui.Label("cell", p.Category.String(), cells[1]),
			ui.Label("cell", money.Format(p.Price), cells[2]),
			ui.Label("cell", strconv.Itoa(p.Stock), cells[3]),
			ui.Button("icon-btn edit", "Edit", actions[0], func() { a.startEdit(id) }),
			ui.Button("icon-btn danger", deleteText, actions[1], func() { a.deleteProduct(id) }),
		)
		y += adminRowHeight + gap
	}
	return dst, y
}

func (a *App) cycleCategory() {
	cats := catalog.Categories()
	for i, c := range cats {
		if c == a.newCat {
			a.newCat = cats[(i+1)%len(cats)]
			return
		}
	}
	a.newCat = cats[0]
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q", s)
	}
	return d, nil
}

func parseStock(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid stock %q", s)
	}
	return n, nil
}

func (a *App) submitProduct() {
	f := a.product
	price, err := parsePrice(f.Get(fieldPrice))
	if !a.report(err) {
		return
	}
	stock, err := parseStock(f.Get(fieldStock))
	if !a.report(err) {
		return
	}
	p, err := a.m.CreateProduct(catalog.Draft{
		Name:        strings.TrimSpace(f.Get(fieldProductName)),
		Price:       price,
		Category:    a.newCat,
		Glyph:       f.Get(fieldGlyph),
		Stock:       stock,
		Description: f.Get(fieldDescription),
	})
	if !a.report(err) {
		return
	}
	f.Reset()
	a.flash(fmt.Sprintf("Added %s", p.Name))
}

func (a *App) startEdit(id int) {
	p, err := a.m.Catalog().Get(id)
	if !a.report(err) {
		return
	}
	a.editing = id
	a.deleting = 0
	a.edit.Reset()
	a.edit.Set(fieldProductName, p.Name)
	a.edit.Set(fieldPrice, p.Price.StringFixed(2))
	a.edit.Set(fieldStock, strconv.Itoa(p.Stock))
	a.edit.Set(fieldDescription, p.Description)
	a.active = a.edit
	a.scroll = 0
}

func (a *App) cancelEdit() {
	a.editing = 0
	a.active = a.product
}

func (a *App) submitEdit() {
	f := a.edit
	price, err := parsePrice(f.Get(fieldPrice))
	if !a.report(err) {
		return
	}
	stock, err := parseStock(f.Get(fieldStock))
	if !a.report(err) {
		return
	}
	name, desc := strings.TrimSpace(f.Get(fieldProductName)), f.Get(fieldDescription)
	p, err := a.m.EditProduct(a.editing, catalog.Patch{Name: &name, Price: &price, Stock: &stock, Description: &desc})
	if !a.report(err) {
		return
	}
	a.cancelEdit()
	a.flash(fmt.Sprintf("Saved %s", p.Name))
}

// deleteProduct asks for confirmation on the first click and deletes on the second.
func (a *App) deleteProduct(id int) {
	confirmed := a.deleting == id
	deleted, err := a.m.DeleteProduct(id, func(catalog.Product) bool { return confirmed })
	if !a.report(err) {
		a.deleting = 0
		return
	}
	if !deleted {
		a.deleting = id
		return
	}
	a.deleting = 0
	if a.editing == id {
		a.cancelEdit()
	}
	a.flash(fmt.Sprintf("Deleted product #%d", id))
}
