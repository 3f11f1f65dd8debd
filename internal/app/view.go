package app

import (
	"fmt"
	"strings"
)

// View is the page currently shown.
type View string

const (
	ViewShop          View = "shop"
	ViewCart          View = "cart"
	ViewCheckout      View = "checkout"
	ViewLogin         View = "login"
	ViewAdmin         View = "admin"
	ViewOrderComplete View = "order-complete"
)

// NavViews are the views reachable from navigation.
func NavViews() []View {
	return []View{ViewShop, ViewCart, ViewCheckout, ViewLogin, ViewAdmin}
}

// ParseView resolves a navigation name.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, n := range NavViews() {
		if v == n {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}
