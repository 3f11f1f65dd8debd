package views

import (
	"storefront/internal/ui"
)

// loginNodes lays out the Login/Register tabs and the active form.
func (a *App) loginNodes(dst []*ui.Node, y float32) ([]*ui.Node, float32) {
	dst, y = title(dst, "Account", y)
	tabs := ui.Row(margin, y, buttonH, 0, fieldWidth/2, fieldWidth/2)
	for i, tab := range []struct{ key, text string }{{tabLogin, "Login"}, {tabRegister, "Register"}} {
		class := "auth-tab"
		if a.authTab == tab.key {
			class += " active"
		}
		key := tab.key
		dst = append(dst, ui.Button(class, tab.text, tabs[i], func() { a.switchTab(key) }))
	}
	y += buttonH + 2*gap

	errs, general := a.m.AuthErrors()
	form, submit, label := a.login, a.submitLogin, "Login"
	if a.authTab == tabRegister {
		form, submit, label = a.register, a.submitRegister, "Register"
	}
	dst, y = a.fieldNodes(dst, form, margin, y, errs)
	if general != "" {
		dst = append(dst, ui.Label("error-msg", general, ui.Rect{X: margin, Y: y, Width: fieldWidth, Height: 20}))
		y += 20 + gap
	}
	dst = append(dst, ui.Button("btn-primary", label, ui.Rect{X: margin, Y: y, Width: fieldWidth, Height: buttonH}, submit))
	y += buttonH + gap
	if a.authTab == tabLogin {
		dst = append(dst, ui.Label("muted", "Demo: admin / admin123 or user / user123", ui.Rect{X: margin, Y: y, Width: 480, Height: lineHeight}))
		y += lineHeight
	}
	return dst, y
}

// switchTab toggles between the login and register forms and clears their errors.
func (a *App) switchTab(tab string) {
	if a.authTab == tab {
		return
	}
	a.authTab = tab
	a.login.Reset()
	a.register.Reset()
	a.active = a.authForm()
	a.m.ClearAuthErrors()
}
