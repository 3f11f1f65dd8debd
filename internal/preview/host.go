package preview

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"go.uber.org/zap"

	"storefront/internal/catalog"
	"storefront/internal/geometry"
	"storefront/internal/schedule"
)

// Rect is a mount point's screen region.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Mount describes where a preview lives.
type Mount struct {
	Key    int
	Bounds Rect
}

// SurfaceFactory creates the surface for a new session, sized to the mount point.
type SurfaceFactory func(m Mount, shape geometry.Shape) (Surface, error)

// MountLookup returns the current bounds of the card for key, or false when the card is not
// on screen.
type MountLookup func(key int) (Rect, bool)

// Options tunes every session a Host creates.
type Options struct {
	Sensitivity float32
	IdleSpin    float32
	// MountDelay defers surface creation after a re-layout; 0 means the next frame.
	MountDelay time.Duration
}

// DefaultOptions returns the stock sensitivity and idle spin with next-frame mounting.
func DefaultOptions() Options {
	return Options{Sensitivity: DefaultSensitivity, IdleSpin: DefaultIdleSpin}
}

type pendingMount struct {
	task     *schedule.Task
	shapeKey geometry.Key
}

// Input is one frame of pointer state, in screen pixels.
type Input struct {
	Pointer  Point
	Pressed  bool // primary button went down this frame
	Released bool // primary button went up this frame
	Touches  []Point
}

// Host owns every preview session. Sessions are created through deferred, cancellable mounts
// and stopped explicitly when their card leaves view, so the number of live render loops
// always equals the number of visible cards.
type Host struct {
	factory  SurfaceFactory
	lookup   MountLookup
	sched    *schedule.Scheduler
	log      *zap.Logger
	opts     Options
	sessions map[int]*Session
	pending  map[int]pendingMount
	touching bool
}

// NewHost wires a host. log may be nil.
func NewHost(factory SurfaceFactory, lookup MountLookup, sched *schedule.Scheduler, log *zap.Logger, opts Options) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{
		factory:  factory,
		lookup:   lookup,
		sched:    sched,
		log:      log,
		opts:     opts,
		sessions: make(map[int]*Session),
		pending:  make(map[int]pendingMount),
	}
}

// Sync makes the sessions match the visible products. Sessions whose card left view are
// stopped, pending mounts for them are cancelled, products whose category or color changed
// are rebuilt, and new cards get a deferred mount. Sync(nil) tears everything down.
func (h *Host) Sync(products []catalog.Product) {
	want := make(map[int]geometry.Key, len(products))
	for _, p := range products {
		want[p.ID] = geometry.KeyOf(p)
	}
	for key, s := range h.sessions {
		if k, ok := want[key]; !ok || k != s.shapeKey {
			h.stop(key, s)
		}
	}
	for key, pm := range h.pending {
		if k, ok := want[key]; !ok || k != pm.shapeKey {
			pm.task.Cancel()
			delete(h.pending, key)
			h.log.Debug("preview mount cancelled", zap.Int("product", key))
		}
	}
	for _, p := range products {
		if _, ok := h.sessions[p.ID]; ok {
			continue
		}
		if _, ok := h.pending[p.ID]; ok {
			continue
		}
		h.schedule(p)
	}
}

func (h *Host) schedule(p catalog.Product) {
	task := h.sched.After(h.opts.MountDelay, fmt.Sprintf("mount preview %d", p.ID), func() {
		delete(h.pending, p.ID)
		if _, ok := h.lookup(p.ID); !ok {
			h.log.Debug("preview mount point gone", zap.Int("product", p.ID))
			return
		}
		if _, err := h.Mount(p); err != nil {
			h.log.Warn("preview mount failed", zap.Int("product", p.ID), zap.Error(err))
		}
	})
	h.pending[p.ID] = pendingMount{task: task, shapeKey: geometry.KeyOf(p)}
}

// Mount creates a session for p right away, replacing any existing one. The returned
// session is also the handle that stops it.
func (h *Host) Mount(p catalog.Product) (*Session, error) {
	bounds, ok := h.lookup(p.ID)
	if !ok {
		return nil, fmt.Errorf("preview: no mount point for product %d", p.ID)
	}
	if pm, ok := h.pending[p.ID]; ok {
		pm.task.Cancel()
		delete(h.pending, p.ID)
	}
	if old, ok := h.sessions[p.ID]; ok {
		h.stop(p.ID, old)
	}
	shape := geometry.ForProduct(p)
	surface, err := h.factory(Mount{Key: p.ID, Bounds: bounds}, shape)
	if err != nil {
		return nil, fmt.Errorf("preview: surface for product %d: %w", p.ID, err)
	}
	s := newSession(p.ID, geometry.KeyOf(p), NewController(h.opts.Sensitivity, h.opts.IdleSpin), surface)
	h.sessions[p.ID] = s
	h.log.Debug("preview mounted", zap.Int("product", p.ID), zap.String("shape", shape.Name))
	return s, nil
}

// Unmount stops the session for key and cancels a pending mount. It reports whether
// anything was torn down.
func (h *Host) Unmount(key int) bool {
	found := false
	if pm, ok := h.pending[key]; ok {
		pm.task.Cancel()
		delete(h.pending, key)
		found = true
	}
	if s, ok := h.sessions[key]; ok {
		h.stop(key, s)
		found = true
	}
	return found
}

func (h *Host) stop(key int, s *Session) {
	s.Stop()
	delete(h.sessions, key)
	h.log.Debug("preview stopped", zap.Int("product", key), zap.Uint64("frames", s.Frames()))
}

// StopAll tears down every session and pending mount.
func (h *Host) StopAll() {
	h.Sync(nil)
}

// Keys returns the ids of live sessions in ascending order.
func (h *Host) Keys() []int {
	return slices.Sorted(maps.Keys(h.sessions))
}

// Session returns the live session for key.
func (h *Host) Session(key int) (*Session, bool) {
	s, ok := h.sessions[key]
	return s, ok
}

// Active is the number of live render loops.
func (h *Host) Active() int {
	return len(h.sessions)
}

// Pending is the number of scheduled mounts that have not fired.
func (h *Host) Pending() int {
	return len(h.pending)
}

// Tick renders one frame of every live session.
func (h *Host) Tick() {
	for _, key := range h.Keys() {
		h.sessions[key].Tick()
	}
}

// HandleInput routes one frame of pointer or touch state to the sessions. A press starts a
// drag only inside the card's bounds; leaving the bounds or releasing ends it. Touch drags
// follow the first touch point until every finger lifts.
func (h *Host) HandleInput(in Input) {
	touching := len(in.Touches) > 0
	wasTouching := h.touching
	h.touching = touching
	for _, key := range h.Keys() {
		c := h.sessions[key].ctrl
		r, ok := h.lookup(key)
		if !ok {
			c.PointerLeave()
			continue
		}
		switch {
		case touching && !wasTouching:
			if r.Contains(in.Touches[0]) {
				c.TouchStart(in.Touches)
			}
		case touching:
			c.TouchMove(in.Touches)
		case wasTouching:
			c.TouchEnd()
		default:
			routePointer(c, r, in)
		}
	}
}

func routePointer(c *Controller, r Rect, in Input) {
	inside := r.Contains(in.Pointer)
	if in.Pressed && inside {
		c.PointerDown(in.Pointer)
		return
	}
	if !c.Dragging() {
		return
	}
	switch {
	case in.Released:
		c.PointerUp()
	case !inside:
		c.PointerLeave()
	default:
		c.PointerMove(in.Pointer)
	}
}
