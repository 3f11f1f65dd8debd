package views

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"storefront/internal/app"
	"storefront/internal/checkout"
	"storefront/internal/ui"
)

const (
	tabLogin    = "login"
	tabRegister = "register"
)

// Field names of the non-checkout forms.
const (
	fieldUsername    = "username"
	fieldPassword    = "password"
	fieldConfirm     = "confirm"
	fieldProductName = "name"
	fieldPrice       = "price"
	fieldGlyph       = "glyph"
	fieldStock       = "stock"
	fieldDescription = "description"
)

func (a *App) initForms() {
	a.login = ui.NewForm(
		&ui.Field{Name: fieldUsername, Label: "Username", Max: 32},
		&ui.Field{Name: fieldPassword, Label: "Password", Secret: true, Max: 64},
	)
	a.register = ui.NewForm(
		&ui.Field{Name: fieldUsername, Label: "Username", Max: 32},
		&ui.Field{Name: fieldPassword, Label: "Password", Secret: true, Max: 64},
		&ui.Field{Name: fieldConfirm, Label: "Confirm Password", Secret: true, Max: 64},
	)
	a.checkout = ui.NewForm(
		&ui.Field{Name: checkout.FieldName, Label: "Full Name", Max: 64},
		&ui.Field{Name: checkout.FieldEmail, Label: "Email", Max: 64},
		&ui.Field{Name: checkout.FieldAddress, Label: "Address", Max: 96},
		&ui.Field{Name: checkout.FieldCity, Label: "City", Max: 48},
		&ui.Field{Name: checkout.FieldZIP, Label: "ZIP Code", Max: 10},
		&ui.Field{Name: checkout.FieldCard, Label: "Card Number", Max: 19},
	)
	a.product = ui.NewForm(
		&ui.Field{Name: fieldProductName, Label: "Name", Max: 48},
		&ui.Field{Name: fieldPrice, Label: "Price", Max: 10},
		&ui.Field{Name: fieldGlyph, Label: "Emoji", Max: 4},
		&ui.Field{Name: fieldStock, Label: "Stock", Max: 6},
		&ui.Field{Name: fieldDescription, Label: "Description", Max: 120},
	)
	a.edit = ui.NewForm(
		&ui.Field{Name: fieldProductName, Label: "Name", Max: 48},
		&ui.Field{Name: fieldPrice, Label: "Price", Max: 10},
		&ui.Field{Name: fieldStock, Label: "Stock", Max: 6},
		&ui.Field{Name: fieldDescription, Label: "Description", Max: 120},
	)
}

func (a *App) authForm() *ui.Form {
	if a.authTab == tabRegister {
		return a.register
	}
	return a.login
}

func (a *App) loadCheckout(f checkout.Form) {
	a.checkout.Reset()
	a.checkout.Set(checkout.FieldName, f.Name)
	a.checkout.Set(checkout.FieldEmail, f.Email)
	a.checkout.Set(checkout.FieldAddress, f.Address)
	a.checkout.Set(checkout.FieldCity, f.City)
	a.checkout.Set(checkout.FieldZIP, f.ZIP)
	a.checkout.Set(checkout.FieldCard, f.Card)
}

func (a *App) checkoutValues() checkout.Form {
	return checkout.Form{
		Name:    a.checkout.Get(checkout.FieldName),
		Email:   a.checkout.Get(checkout.FieldEmail),
		Address: a.checkout.Get(checkout.FieldAddress),
		City:    a.checkout.Get(checkout.FieldCity),
		ZIP:     a.checkout.Get(checkout.FieldZIP),
		Card:    a.checkout.Get(checkout.FieldCard),
	}
}

// handleKeys feeds the keyboard into the focused field. Tab and Shift+Tab move focus,
// Enter submits the active form.
func (a *App) handleKeys() {
	f := a.active
	if f == nil {
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	field := f.Focused()
	paste := rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper))
	if paste {
		field.Paste(rl.GetClipboardText())
	}
	for {
		c := rl.GetCharPressed()
		if c == 0 {
			break
		}
		if !paste {
			field.Insert(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		field.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
			f.Prev()
		} else {
			f.Next()
		}
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		a.submit(f)
	}
}

// submit runs the action behind form f.
func (a *App) submit(f *ui.Form) {
	switch f {
	case a.login:
		a.submitLogin()
	case a.register:
		a.submitRegister()
	case a.checkout:
		a.submitCheckout()
	case a.product:
		a.submitProduct()
	case a.edit:
		a.submitEdit()
	}
}

func (a *App) submitLogin() {
	if a.m.Login(a.login.Get(fieldUsername), a.login.Get(fieldPassword)) == nil {
		a.login.Reset()
	}
}

func (a *App) submitRegister() {
	r := a.register
	if a.m.Register(r.Get(fieldUsername), r.Get(fieldPassword), r.Get(fieldConfirm)) == nil {
		r.Reset()
	}
}

func (a *App) submitCheckout() {
	_, err := a.m.SubmitCheckout(a.checkoutValues())
	if errors.Is(err, app.ErrEmptyCart) {
		a.flash("Your cart is empty")
	}
}

// focusNode returns the click action that focuses field i of f.
func (a *App) focusNode(f *ui.Form, i int) func() {
	return func() {
		a.active = f
		f.Focus(i)
	}
}
