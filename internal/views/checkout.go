package views

import (
	"fmt"

	"storefront/internal/money"
	"storefront/internal/ui"
)

// checkoutNodes lays out the shipping/payment form and the order summary beside it.
func (a *App) checkoutNodes(dst []*ui.Node, y float32) ([]*ui.Node, float32) {
	dst, y = title(dst, "Checkout", y)
	top := y

	_, errs := a.m.CheckoutForm()
	dst, y = a.fieldNodes(dst, a.checkout, margin, y, errs)
	dst = append(dst, ui.Button("btn-checkout", "Complete Order", ui.Rect{X: margin, Y: y, Width: fieldWidth, Height: buttonH}, a.submitCheckout))
	y += buttonH

	var lines []string
	for _, l := range a.m.CartLines() {
		lines = append(lines, fmt.Sprintf("%s x%d  %s", l.Product.Name, l.Quantity, money.Format(l.Subtotal())))
	}
	lines = append(lines, "Total: "+money.Format(a.m.CartTotal()))
	sx := float32(margin + fieldWidth + 3*margin)
	h := float32(len(lines)+1)*lineHeight + gap
	dst = a.summary.AppendNodes(dst, true, ui.Rect{X: sx, Y: top, Width: 380, Height: h}, lineHeight, lines)
	return dst, max(y, top+h)
}

// orderCompleteNodes shows the confirmation until the redirect back to the shop.
func (a *App) orderCompleteNodes(dst []*ui.Node, y float32) ([]*ui.Node, float32) {
	w := a.screenW - 2*margin
	dst = append(dst,
		ui.Label("order-complete-icon", "✓", ui.Rect{X: margin, Y: y, Width: w, Height: 60}),
		ui.Label("order-complete-title", "Order Complete!", ui.Rect{X: margin, Y: y + 70, Width: w, Height: 44}),
		ui.Label("muted center", "Thank you for your purchase. Redirecting to shop...", ui.Rect{X: margin, Y: y + 120, Width: w, Height: lineHeight}),
	)
	y += 120 + lineHeight
	if o, ok := a.m.LastOrder(); ok {
		text := fmt.Sprintf("Order %s  ·  %d items  ·  %s  ·  card %s", o.ID.String()[:8], o.Items(), money.Format(o.Total), o.Card)
		dst = append(dst, ui.Label("muted center", text, ui.Rect{X: margin, Y: y + gap, Width: w, Height: lineHeight}))
		y += gap + lineHeight
	}
	return dst, y
}
