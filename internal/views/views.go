// Package views draws the storefront with raylib: navigation, the product grid with live 3D
// previews, cart, checkout, login, and admin pages. Layout is rebuilt every frame from the
// app.Manager state; the preview host is re-synced whenever that layout changes.
package views

import (
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"storefront/internal/app"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/debug"
	"storefront/internal/preview"
	"storefront/internal/schedule"
	"storefront/internal/terminal"
	"storefront/internal/ui"
)

// flashDuration is how long a status message stays up.
const flashDuration = 4 * time.Second

// Deps are the collaborators of App.
type Deps struct {
	Manager   *app.Manager
	Scheduler *schedule.Scheduler
	Factory   preview.SurfaceFactory
	Engine    *ui.Engine
	Terminal  *terminal.Terminal
	Debug     *debug.Debug
	Log       *zap.Logger
	Preview   config.Preview
}

// signature is the part of the state that decides which cards are on screen.
type signature struct {
	view     app.View
	category catalog.Category
	rev      uint64
}

// App is the storefront screen.
type App struct {
	m       *app.Manager
	sched   *schedule.Scheduler
	host    *preview.Host
	engine  *ui.Engine
	term    *terminal.Terminal
	dbg     *debug.Debug
	log     *zap.Logger
	cfg     config.Preview
	render  *renderer
	summary *ui.Panel

	cards    map[int]ui.Rect
	sig      signature
	synced   bool
	lastView app.View
	scroll   float32
	contentH float32
	screenW  float32
	screenH  float32

	active   *ui.Form
	login    *ui.Form
	register *ui.Form
	checkout *ui.Form
	product  *ui.Form
	edit     *ui.Form
	authTab  string
	editing  int
	newCat   catalog.Category
	deleting int

	status     string
	statusTask *schedule.Task
}

// New wires the screen and its preview host.
func New(d Deps) *App {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		m:        d.Manager,
		sched:    d.Scheduler,
		engine:   d.Engine,
		term:     d.Terminal,
		dbg:      d.Debug,
		log:      log,
		cfg:      d.Preview,
		cards:    make(map[int]ui.Rect),
		lastView: d.Manager.View(),
		authTab:  tabLogin,
		newCat:   catalog.Tops,
		summary:  ui.NewPanel("summary", "Order Summary"),
	}
	a.host = preview.NewHost(d.Factory, a.mountPoint, d.Scheduler, log, preview.Options{
		Sensitivity: d.Preview.Sensitivity,
		IdleSpin:    d.Preview.IdleSpin,
		MountDelay:  d.Preview.MountDelay,
	})
	a.render = &renderer{host: a.host}
	a.initForms()
	return a
}

// Host exposes the preview host (stats and shutdown).
func (a *App) Host() *preview.Host {
	return a.host
}

// SetFont sets the font used for page text. Zero texture ID = use raylib default.
func (a *App) SetFont(f rl.Font) {
	a.render.font = f
}

// mountPoint is the preview.MountLookup: the preview area of a card in the current layout.
func (a *App) mountPoint(key int) (preview.Rect, bool) {
	r, ok := a.cards[key]
	if !ok {
		return preview.Rect{}, false
	}
	return preview.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}, true
}

// flash shows msg in the status bar for a few seconds, replacing any current message.
func (a *App) flash(msg string) {
	a.status = msg
	a.statusTask.Cancel()
	a.statusTask = a.sched.After(flashDuration, "status clear", func() { a.status = "" })
}

// report flashes err when non-nil and reports whether the action succeeded.
func (a *App) report(err error) bool {
	if err != nil {
		a.flash(err.Error())
		return false
	}
	return true
}

// Update runs one frame of input, timers, layout, and preview rendering.
func (a *App) Update() {
	a.term.Update()
	a.screenW, a.screenH = float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	mouse := rl.GetMousePosition()
	a.engine.SetScreen(int32(a.screenW), int32(a.screenH))
	a.engine.SetPointer(mouse.X, mouse.Y)

	if v := a.m.View(); v != a.lastView {
		a.enterView(v)
	}
	if !a.term.IsOpen() {
		a.handleKeys()
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.scroll -= wheel * 40
	}
	a.layout()

	clicked := false
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		clicked = a.engine.Click(mouse.X, mouse.Y)
	}
	if !clicked {
		a.host.HandleInput(a.pointerInput(mouse))
	}

	a.sched.Run()
	a.host.Tick()
}

// layout rebuilds the nodes for the current view and re-syncs previews when the set of
// cards changed.
func (a *App) layout() {
	a.cards = make(map[int]ui.Rect, len(a.cards))
	var nodes []*ui.Node
	top := float32(navHeight) + margin - a.scroll
	var bottom float32
	switch a.m.View() {
	case app.ViewShop:
		nodes, bottom = a.shopNodes(nodes, top)
	case app.ViewCart:
		nodes, bottom = a.cartNodes(nodes, top)
	case app.ViewCheckout:
		nodes, bottom = a.checkoutNodes(nodes, top)
	case app.ViewOrderComplete:
		nodes, bottom = a.orderCompleteNodes(nodes, top)
	case app.ViewLogin:
		nodes, bottom = a.loginNodes(nodes, top)
	case app.ViewAdmin:
		nodes, bottom = a.adminNodes(nodes, top)
	}
	a.contentH = bottom + a.scroll + margin
	a.clampScroll()
	nodes = a.navNodes(nodes)
	a.engine.SetNodes(nodes)

	sig := signature{view: a.m.View(), category: a.m.Category(), rev: a.m.Catalog().Revision()}
	if !a.synced || sig != a.sig {
		a.sig, a.synced = sig, true
		if sig.view == app.ViewShop {
			a.host.Sync(a.m.VisibleProducts())
		} else {
			a.host.Sync(nil)
		}
	}
}

func (a *App) clampScroll() {
	maxScroll := a.contentH - a.screenH
	if a.scroll > maxScroll {
		a.scroll = maxScroll
	}
	if a.scroll < 0 {
		a.scroll = 0
	}
}

// enterView resets per-page state when the view changes.
func (a *App) enterView(v app.View) {
	a.lastView = v
	a.scroll = 0
	a.deleting = 0
	switch v {
	case app.ViewCheckout:
		f, _ := a.m.CheckoutForm()
		a.loadCheckout(f)
		a.active = a.checkout
	case app.ViewLogin:
		a.login.Reset()
		a.register.Reset()
		a.active = a.authForm()
	case app.ViewAdmin:
		a.active = a.product
	default:
		a.active = nil
	}
}

// pointerInput samples the mouse and, on touch platforms, the touch points.
func (a *App) pointerInput(mouse rl.Vector2) preview.Input {
	in := preview.Input{
		Pointer:  preview.Point{X: mouse.X, Y: mouse.Y},
		Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
	}
	if runtime.GOOS == "android" || runtime.GOOS == "ios" {
		for i := range rl.GetTouchPointCount() {
			p := rl.GetTouchPosition(i)
			in.Touches = append(in.Touches, preview.Point{X: p.X, Y: p.Y})
		}
	}
	return in
}

// Draw draws the page, then the terminal and debug overlays on top.
func (a *App) Draw() {
	a.engine.Draw(a.render)
	a.term.Draw()
	a.dbg.Draw()
}

// Close stops every preview and releases their textures.
func (a *App) Close() {
	a.host.StopAll()
	a.statusTask.Cancel()
}

// Stats reports overlay numbers.
func (a *App) Stats() debug.Stats {
	return debug.Stats{
		Previews: a.host.Active(),
		Pending:  a.host.Pending(),
		Cart:     a.m.CartCount(),
	}
}
