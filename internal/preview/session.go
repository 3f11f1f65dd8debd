package preview

import "storefront/internal/geometry"

// Surface is the render target of one preview: it owns whatever GPU resources it needs and
// draws its shape at the given orientation. internal/scene provides the raylib version.
type Surface interface {
	Render(o Orientation)
	Close()
}

// Handle is what mounting a preview hands back: the only way to end its render loop.
type Handle interface {
	Stop()
	Stopped() bool
}

// Session is one mounted preview. It is ticked by its Host once per frame until stopped.
type Session struct {
	key      int
	shapeKey geometry.Key
	ctrl     *Controller
	surface  Surface
	frames   uint64
	stopped  bool
}

var _ Handle = (*Session)(nil)

func newSession(key int, shapeKey geometry.Key, ctrl *Controller, surface Surface) *Session {
	return &Session{key: key, shapeKey: shapeKey, ctrl: ctrl, surface: surface}
}

// Key is the product id the session previews.
func (s *Session) Key() int {
	return s.key
}

// Controller returns the session's drag controller.
func (s *Session) Controller() *Controller {
	return s.ctrl
}

// Surface returns the session's render surface.
func (s *Session) Surface() Surface {
	return s.surface
}

// Frames is the number of ticks rendered so far.
func (s *Session) Frames() uint64 {
	return s.frames
}

// Tick advances one frame: idle spin when not dragging, then redraw at the current
// orientation. A stopped session does nothing.
func (s *Session) Tick() {
	if s.stopped {
		return
	}
	s.ctrl.Advance()
	s.surface.Render(s.ctrl.Orientation())
	s.frames++
}

// Stop ends the render loop and releases the surface. It is safe to call more than once.
func (s *Session) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.surface.Close()
}

// Stopped reports whether Stop has been called.
func (s *Session) Stopped() bool {
	return s.stopped
}
