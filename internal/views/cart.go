package views

import (
	"fmt"

	"storefront/internal/app"
	"storefront/internal/money"
	"storefront/internal/ui"
)

const cartRowHeight = 56

// cartNodes lays out the cart lines with quantity controls, the total, and the checkout button.
func (a *App) cartNodes(dst []*ui.Node, y float32) ([]*ui.Node, float32) {
	dst, y = title(dst, "Shopping Cart", y)
	lines := a.m.CartLines()
	if len(lines) == 0 {
		dst = append(dst,
			ui.Label("muted", "Your cart is empty", ui.Rect{X: margin, Y: y, Width: 400, Height: lineHeight}),
			ui.Button("btn-primary", "Continue Shopping", ui.Rect{X: margin, Y: y + lineHeight + gap, Width: 220, Height: buttonH},
				func() { a.report(a.m.ShowView(app.ViewShop)) }),
		)
		return dst, y + lineHeight + gap + buttonH
	}

	for _, l := range lines {
		id := l.Product.ID
		cells := ui.Row(margin, y+8, buttonH, gap, 48, 320, 120, 40, 48, 40, 120, 90)
		dst = append(dst,
			&ui.Node{Type: "panel", Class: "cart-item", Bounds: ui.Rect{X: margin, Y: y, Width: a.screenW - 2*margin, Height: cartRowHeight}},
			ui.Label("cart-item-emoji", l.Product.Glyph, cells[0]),
			ui.Label("cart-item-name", l.Product.Name, cells[1]),
			ui.Label("cart-item-price", money.Format(l.Product.Price), cells[2]),
			ui.Button("qty-btn", "-", cells[3], func() { a.m.UpdateQuantity(id, -1) }),
			ui.Label("qty-display", fmt.Sprint(l.Quantity), cells[4]),
			ui.Button("qty-btn", "+", cells[5], func() { a.m.UpdateQuantity(id, 1) }),
			ui.Label("cart-item-subtotal", money.Format(l.Subtotal()), cells[6]),
			ui.Button("icon-btn danger", "Remove", cells[7], func() { a.m.RemoveFromCart(id) }),
		)
		y += cartRowHeight + gap
	}

	y += gap
	dst = append(dst,
		ui.Label("cart-total", "Total: "+money.Format(a.m.CartTotal()), ui.Rect{X: margin, Y: y, Width: 400, Height: 36}),
		ui.Button("btn-checkout", "Proceed to Checkout", ui.Rect{X: margin, Y: y + 36 + gap, Width: 260, Height: buttonH},
			func() { a.report(a.m.ShowView(app.ViewCheckout)) }),
	)
	return dst, y + 36 + gap + buttonH
}
