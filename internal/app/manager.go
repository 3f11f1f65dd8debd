// Package app holds the storefront's application state behind a single Manager: catalog,
// cart, session, current view, category filter, and the deferred tasks they own. Every
// mutation happens on the frame loop through Manager methods.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/schedule"
)

var (
	ErrForbidden   = errors.New("admin access required")
	ErrEmptyCart   = errors.New("cart is empty")
	ErrUnknownView = errors.New("unknown view")
)

// DefaultRedirectDelay is how long the order confirmation stays up.
const DefaultRedirectDelay = 3 * time.Second

// Options configures a Manager.
type Options struct {
	RedirectDelay time.Duration
	Now           func() time.Time
}

// Manager is the single writer of storefront state.
type Manager struct {
	catalog *catalog.Store
	cart    *cart.Cart
	authn   auth.Authenticator
	sched   *schedule.Scheduler
	log     *zap.Logger
	opts    Options

	user     *auth.Identity
	view     View
	category catalog.Category

	form       checkout.Form
	formErrors checkout.FieldErrors
	authErrors auth.FieldErrors
	authError  string
	order      *checkout.Order
	redirect   *schedule.Task
}

// New returns a manager on the shop view with the All filter and an empty cart.
func New(store *catalog.Store, authn auth.Authenticator, sched *schedule.Scheduler, log *zap.Logger, opts Options) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.RedirectDelay <= 0 {
		opts.RedirectDelay = DefaultRedirectDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{
		catalog:  store,
		cart:     cart.New(),
		authn:    authn,
		sched:    sched,
		log:      log,
		opts:     opts,
		view:     ViewShop,
		category: catalog.All,
	}
}

// View returns the current view.
func (m *Manager) View() View {
	return m.view
}

// ShowView switches views. The admin view requires an admin identity. Leaving the order
// confirmation early completes the order right away instead of waiting for the redirect.
func (m *Manager) ShowView(v View) error {
	if v == ViewAdmin && !m.IsAdmin() {
		return ErrForbidden
	}
	if m.view == ViewOrderComplete && v != ViewOrderComplete {
		m.completeOrder()
	}
	if v != ViewLogin {
		m.authErrors, m.authError = nil, ""
	}
	if m.view != v {
		m.log.Debug("view", zap.String("from", string(m.view)), zap.String("to", string(v)))
	}
	m.view = v
	return nil
}

// Catalog exposes the product store for read access.
func (m *Manager) Catalog() *catalog.Store {
	return m.catalog
}

// Category returns the active filter.
func (m *Manager) Category() catalog.Category {
	return m.category
}

// SelectCategory changes the filter. c must be All or a known category.
func (m *Manager) SelectCategory(c catalog.Category) error {
	if c != catalog.All && !c.Known() {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, c)
	}
	m.category = c
	return nil
}

// VisibleProducts is the product grid under the current filter.
func (m *Manager) VisibleProducts() []catalog.Product {
	return m.catalog.Filter(m.category)
}

// User returns the signed-in identity.
func (m *Manager) User() (auth.Identity, bool) {
	if m.user == nil {
		return auth.Identity{}, false
	}
	return *m.user, true
}

// IsAdmin reports whether an admin is signed in.
func (m *Manager) IsAdmin() bool {
	return m.user != nil && m.user.IsAdmin()
}

// Cart lines, badge count, and total.

func (m *Manager) CartLines() []cart.Line { return m.cart.Lines() }

func (m *Manager) CartCount() int { return m.cart.Count() }

func (m *Manager) CartTotal() decimal.Decimal { return m.cart.Total() }

// AddToCart adds one unit of product id and shows the cart.
func (m *Manager) AddToCart(id int) error {
	p, err := m.catalog.Get(id)
	if err != nil {
		return err
	}
	l, err := m.cart.Add(p)
	if err != nil {
		return err
	}
	m.log.Info("cart add", zap.Int("product", id), zap.Int("quantity", l.Quantity))
	return m.ShowView(ViewCart)
}

// RemoveFromCart drops the line for id.
func (m *Manager) RemoveFromCart(id int) bool {
	return m.cart.Remove(id)
}

// UpdateQuantity changes a line's quantity by delta, never below 1. Unknown ids are ignored.
func (m *Manager) UpdateQuantity(id, delta int) (int, bool) {
	qty, ok := m.cart.UpdateQuantity(id, delta)
	if !ok {
		m.log.Debug("quantity update for missing line", zap.Int("product", id))
	}
	return qty, ok
}

// AuthErrors returns the field errors of the last failed login or registration.
func (m *Manager) AuthErrors() (auth.FieldErrors, string) {
	return m.authErrors, m.authError
}

// ClearAuthErrors drops the login and registration errors.
func (m *Manager) ClearAuthErrors() {
	m.authErrors, m.authError = nil, ""
}

// Login checks the credentials and, on success, signs in and shows the shop.
func (m *Manager) Login(username, password string) error {
	m.authErrors, m.authError = nil, ""
	username = strings.TrimSpace(username)
	if err := auth.ValidateLogin(username, password); err != nil {
		m.authErrors, _ = err.(auth.FieldErrors)
		return err
	}
	id, ok := m.authn.Authenticate(username, password)
	if !ok {
		m.authError = "Invalid username or password"
		m.log.Info("login failed", zap.String("user", username))
		return auth.ErrInvalidCredentials
	}
	m.signIn(id)
	return nil
}

// Register validates the form and starts a customer session. When the authenticator can
// store accounts the new credentials are saved, so the user can log in again later.
func (m *Manager) Register(username, password, confirm string) error {
	m.authErrors, m.authError = nil, ""
	username = strings.TrimSpace(username)
	if err := auth.ValidateRegistration(username, password, confirm); err != nil {
		m.authErrors, _ = err.(auth.FieldErrors)
		return err
	}
	id := auth.Identity{Username: username, Role: auth.RoleCustomer}
	if r, ok := m.authn.(auth.Registrar); ok {
		var err error
		if id, err = r.Register(username, password); err != nil {
			m.authError = err.Error()
			return err
		}
	}
	m.signIn(id)
	return nil
}

func (m *Manager) signIn(id auth.Identity) {
	m.user = &id
	m.log.Info("signed in", zap.String("user", id.Username), zap.String("role", string(id.Role)))
	_ = m.ShowView(ViewShop)
}

// Logout clears the identity and the cart, drops any pending order redirect, and shows the
// shop. A guest logout still empties the cart.
func (m *Manager) Logout() error {
	if m.user != nil {
		m.log.Info("signed out", zap.String("user", m.user.Username))
	}
	m.user = nil
	m.redirect.Cancel()
	m.redirect = nil
	m.cart.Clear()
	m.resetForm()
	m.view = ViewShop
	return nil
}

// CheckoutForm returns the last submitted form and its field errors.
func (m *Manager) CheckoutForm() (checkout.Form, checkout.FieldErrors) {
	return m.form, m.formErrors
}

// LastOrder returns the most recent successful order.
func (m *Manager) LastOrder() (checkout.Order, bool) {
	if m.order == nil {
		return checkout.Order{}, false
	}
	return *m.order, true
}

// SubmitCheckout validates f. On failure it returns checkout.FieldErrors and changes nothing
// else. On success it shows the confirmation and schedules the return to the shop; the cart
// is cleared and the form reset when that redirect fires.
func (m *Manager) SubmitCheckout(f checkout.Form) (checkout.Order, error) {
	if m.cart.Empty() {
		return checkout.Order{}, ErrEmptyCart
	}
	m.form = f
	order, fe := checkout.Place(f, m.cart, m.opts.Now())
	if fe != nil {
		m.formErrors = fe
		return checkout.Order{}, fe
	}
	m.formErrors = nil
	m.order = &order
	m.view = ViewOrderComplete
	m.redirect.Cancel()
	m.redirect = m.sched.After(m.opts.RedirectDelay, "order redirect", func() {
		m.redirect = nil
		_ = m.ShowView(ViewShop)
	})
	m.log.Info("order placed",
		zap.String("order", order.ID.String()),
		zap.Int("items", order.Items()),
		zap.String("total", order.Total.StringFixed(2)))
	return order, nil
}

// RedirectPending reports whether the confirmation is still waiting to return to the shop.
func (m *Manager) RedirectPending() bool {
	return m.redirect.Pending()
}

// completeOrder finishes a confirmed order: cancels the redirect, empties the cart, resets the form.
func (m *Manager) completeOrder() {
	m.redirect.Cancel()
	m.redirect = nil
	m.cart.Clear()
	m.resetForm()
}

func (m *Manager) resetForm() {
	m.form = checkout.Form{}
	m.formErrors = nil
}

func (m *Manager) requireAdmin() error {
	if !m.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// CreateProduct adds a product from the admin form.
func (m *Manager) CreateProduct(d catalog.Draft) (catalog.Product, error) {
	if err := m.requireAdmin(); err != nil {
		return catalog.Product{}, err
	}
	p, err := m.catalog.Create(d)
	if err != nil {
		return catalog.Product{}, err
	}
	m.log.Info("product created", zap.Int("product", p.ID), zap.String("name", p.Name))
	return p, nil
}

// EditProduct applies an admin edit to product id.
func (m *Manager) EditProduct(id int, pt catalog.Patch) (catalog.Product, error) {
	if err := m.requireAdmin(); err != nil {
		return catalog.Product{}, err
	}
	p, err := m.catalog.Update(id, pt)
	if err != nil {
		return catalog.Product{}, err
	}
	m.log.Info("product edited", zap.Int("product", id))
	return p, nil
}

// DeleteProduct removes product id once confirm approves it. It reports whether the
// product was deleted; a declined confirmation is not an error.
func (m *Manager) DeleteProduct(id int, confirm func(catalog.Product) bool) (bool, error) {
	if err := m.requireAdmin(); err != nil {
		return false, err
	}
	p, err := m.catalog.Get(id)
	if err != nil {
		return false, err
	}
	if confirm == nil || !confirm(p) {
		return false, nil
	}
	if err := m.catalog.Delete(id); err != nil {
		return false, err
	}
	m.log.Info("product deleted", zap.Int("product", id))
	return true, nil
}
