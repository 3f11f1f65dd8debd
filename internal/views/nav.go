package views

import (
	"fmt"

	"storefront/internal/app"
	"storefront/internal/ui"
)

// Page geometry in pixels.
const (
	navHeight   = 64
	margin      = 32
	lineHeight  = 28
	fieldWidth  = 360
	fieldHeight = 36
	buttonH     = 40
	gap         = 12
)

// navNodes appends the top bar and the status message. They come last so scrolled content
// passes underneath.
func (a *App) navNodes(dst []*ui.Node) []*ui.Node {
	w := a.screenW
	dst = append(dst,
		&ui.Node{Type: "panel", Class: "nav", Bounds: ui.Rect{Width: w, Height: navHeight}},
		ui.Label("brand", "Storefront", ui.Rect{X: margin, Y: 18, Width: 200, Height: lineHeight}),
	)

	type item struct {
		text   string
		view   app.View // page the button opens; "" for logout
		width  float32
		action func()
	}
	show := func(v app.View) func() {
		return func() { a.report(a.m.ShowView(v)) }
	}
	items := []item{
		{"Shop", app.ViewShop, 90, show(app.ViewShop)},
		{"Cart", app.ViewCart, 90, show(app.ViewCart)},
	}
	if a.m.IsAdmin() {
		items = append(items, item{"Admin", app.ViewAdmin, 100, show(app.ViewAdmin)})
	}
	if id, ok := a.m.User(); ok {
		items = append(items, item{id.Username + " | Logout", "", 220, func() { a.report(a.m.Logout()) }})
	} else {
		items = append(items, item{"Login", app.ViewLogin, 100, show(app.ViewLogin)})
	}

	var widths []float32
	var total float32
	for _, it := range items {
		widths = append(widths, it.width)
		total += it.width + gap
	}
	cells := ui.Row(w-margin-total+gap, 12, buttonH, gap, widths...)
	for i, it := range items {
		class := "nav-btn"
		if it.view != "" && it.view == a.m.View() {
			class += " active"
		}
		dst = append(dst, ui.Button(class, it.text, cells[i], it.action))
		if it.view == app.ViewCart {
			if n := a.m.CartCount(); n > 0 {
				c := cells[i]
				dst = append(dst, ui.Label("badge", fmt.Sprint(n), ui.Rect{X: c.X + c.Width - 22, Y: c.Y - 6, Width: 24, Height: 22}))
			}
		}
	}

	if a.status != "" {
		dst = append(dst, ui.Label("status", a.status, ui.Rect{X: margin, Y: a.screenH - 48, Width: a.screenW - 2*margin, Height: 36}))
	}
	return dst
}

// title appends a page heading at y and returns the y below it.
func title(dst []*ui.Node, text string, y float32) ([]*ui.Node, float32) {
	dst = append(dst, ui.Label("page-title", text, ui.Rect{X: margin, Y: y, Width: 600, Height: 40}))
	return dst, y + 40 + gap
}

// fieldNodes appends label, input, and inline error for every field of f starting at (x, y)
// and returns the y below the last one.
func (a *App) fieldNodes(dst []*ui.Node, f *ui.Form, x, y float32, errs map[string]string) ([]*ui.Node, float32) {
	for i, fl := range f.Fields {
		dst = append(dst, ui.Label("field-label", fl.Label, ui.Rect{X: x, Y: y, Width: fieldWidth, Height: 22}))
		y += 24
		class := "input"
		text := fl.Display()
		if a.active == f && f.FocusIndex() == i {
			class += " focused"
			text += "|"
		}
		dst = append(dst, ui.Button(class, text, ui.Rect{X: x, Y: y, Width: fieldWidth, Height: fieldHeight}, a.focusNode(f, i)))
		y += fieldHeight + 4
		if msg := errs[fl.Name]; msg != "" {
			dst = append(dst, ui.Label("error-msg", msg, ui.Rect{X: x, Y: y, Width: fieldWidth, Height: 20}))
			y += 20
		}
		y += gap
	}
	return dst, y
}
