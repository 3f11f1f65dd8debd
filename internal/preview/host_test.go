package preview

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"storefront/internal/catalog"
	"storefront/internal/geometry"
	"storefront/internal/schedule"
)

type fakeSurface struct {
	mount   Mount
	shape   geometry.Shape
	renders []Orientation
	closed  int
}

func (f *fakeSurface) Render(o Orientation) { f.renders = append(f.renders, o) }
func (f *fakeSurface) Close()               { f.closed++ }

type rig struct {
	host     *Host
	sched    *schedule.Scheduler
	now      time.Time
	bounds   map[int]Rect
	surfaces []*fakeSurface
	fail     bool
	logs     *observer.ObservedLogs
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{now: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), bounds: map[int]Rect{}}
	r.sched = schedule.New(func() time.Time { return r.now })
	core, logs := observer.New(zap.DebugLevel)
	r.logs = logs
	factory := func(m Mount, shape geometry.Shape) (Surface, error) {
		if r.fail {
			return nil, errors.New("no gpu")
		}
		s := &fakeSurface{mount: m, shape: shape}
		r.surfaces = append(r.surfaces, s)
		return s, nil
	}
	lookup := func(key int) (Rect, bool) {
		b, ok := r.bounds[key]
		return b, ok
	}
	r.host = NewHost(factory, lookup, r.sched, zap.New(core), DefaultOptions())
	return r
}

// layout gives every product a 100×100 card in a row and syncs the host.
func (r *rig) layout(products []catalog.Product) {
	r.bounds = map[int]Rect{}
	for i, p := range products {
		r.bounds[p.ID] = Rect{X: float32(i * 100), Y: 0, Width: 100, Height: 100}
	}
	r.host.Sync(products)
}

func seed() []catalog.Product {
	return catalog.DefaultSeed()
}

func TestSyncMountsOnNextFrame(t *testing.T) {
	r := newRig(t)
	r.layout(seed())
	assert.Zero(t, r.host.Active())
	assert.Equal(t, 6, r.host.Pending())

	r.sched.Run()
	assert.Equal(t, 6, r.host.Active())
	assert.Zero(t, r.host.Pending())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, r.host.Keys())

	s, ok := r.host.Session(3)
	require.True(t, ok)
	fs := s.Surface().(*fakeSurface)
	assert.Equal(t, geometry.ShapeDress, fs.shape.Name)
	assert.Equal(t, Rect{X: 200, Width: 100, Height: 100}, fs.mount.Bounds)
}

func TestFilterStopsHiddenCards(t *testing.T) {
	r := newRig(t)
	store := catalog.NewStore(seed())
	r.layout(store.List())
	r.sched.Run()

	r.layout(store.Filter(catalog.Tops))
	assert.Equal(t, []int{1, 6}, r.host.Keys())
	assert.Zero(t, r.host.Pending(), "kept cards are not remounted")

	closed := 0
	for _, s := range r.surfaces {
		closed += s.closed
	}
	assert.Equal(t, 4, closed)

	r.layout(nil)
	assert.Zero(t, r.host.Active())
	for _, s := range r.surfaces {
		assert.Equal(t, 1, s.closed, "every surface closed exactly once")
	}
}

func TestCancelledMountNeverRuns(t *testing.T) {
	r := newRig(t)
	r.layout(seed())
	r.layout(nil)
	r.sched.Run()
	assert.Zero(t, r.host.Active())
	assert.Empty(t, r.surfaces)
}

func TestMissingMountPointSkipped(t *testing.T) {
	r := newRig(t)
	r.layout(seed()[:2])
	delete(r.bounds, 2)
	r.sched.Run()
	assert.Equal(t, []int{1}, r.host.Keys())
	assert.Equal(t, 1, r.logs.FilterMessage("preview mount point gone").Len())
}

func TestShapeChangeRemounts(t *testing.T) {
	r := newRig(t)
	store := catalog.NewStore(seed())
	r.layout(store.List())
	r.sched.Run()
	before, _ := r.host.Session(1)

	name := "Renamed"
	_, err := store.Update(1, catalog.Patch{Name: &name})
	require.NoError(t, err)
	r.layout(store.List())
	same, _ := r.host.Session(1)
	assert.Same(t, before, same)

	cat := catalog.Outerwear
	_, err = store.Update(1, catalog.Patch{Category: &cat})
	require.NoError(t, err)
	r.layout(store.List())
	assert.True(t, before.Stopped())
	assert.Equal(t, 1, r.host.Pending())

	r.sched.Run()
	after, ok := r.host.Session(1)
	require.True(t, ok)
	assert.Equal(t, geometry.ShapeOuterwear, after.Surface().(*fakeSurface).shape.Name)
}

func TestMountFailureLogged(t *testing.T) {
	r := newRig(t)
	r.fail = true
	r.layout(seed()[:1])
	r.sched.Run()
	assert.Zero(t, r.host.Active())
	assert.Equal(t, 1, r.logs.FilterMessage("preview mount failed").Len())
}

func TestTickSpinsAndRenders(t *testing.T) {
	r := newRig(t)
	r.layout(seed()[:2])
	r.sched.Run()

	r.host.Tick()
	r.host.Tick()
	for _, key := range r.host.Keys() {
		s, _ := r.host.Session(key)
		assert.EqualValues(t, 2, s.Frames())
		fs := s.Surface().(*fakeSurface)
		require.Len(t, fs.renders, 2)
		assert.InDelta(t, 2*DefaultIdleSpin, fs.renders[1].Yaw, eps)
	}

	s, _ := r.host.Session(1)
	s.Stop()
	r.host.Tick()
	assert.EqualValues(t, 2, s.Frames())
}

func TestPointerRouting(t *testing.T) {
	r := newRig(t)
	r.layout(seed()[:2])
	r.sched.Run()
	first, _ := r.host.Session(1)
	second, _ := r.host.Session(2)

	r.host.HandleInput(Input{Pointer: Point{50, 50}, Pressed: true})
	assert.True(t, first.Controller().Dragging())
	assert.False(t, second.Controller().Dragging())

	r.host.HandleInput(Input{Pointer: Point{60, 50}})
	assert.InDelta(t, 0.1, first.Controller().Orientation().Yaw, eps)

	// leaving the card ends the drag even with the button held
	r.host.HandleInput(Input{Pointer: Point{150, 50}})
	assert.False(t, first.Controller().Dragging())
	assert.Zero(t, second.Controller().Orientation().Yaw)

	r.host.HandleInput(Input{Pointer: Point{150, 50}, Pressed: true})
	assert.True(t, second.Controller().Dragging())
	r.host.HandleInput(Input{Pointer: Point{150, 50}, Released: true})
	assert.False(t, second.Controller().Dragging())
}

func TestTouchRouting(t *testing.T) {
	r := newRig(t)
	r.layout(seed()[:2])
	r.sched.Run()
	second, _ := r.host.Session(2)

	r.host.HandleInput(Input{Touches: []Point{{120, 10}, {20, 10}}})
	assert.True(t, second.Controller().Dragging())
	r.host.HandleInput(Input{Touches: []Point{{120, 30}}})
	assert.InDelta(t, 0.2, second.Controller().Orientation().Pitch, eps)
	r.host.HandleInput(Input{})
	assert.False(t, second.Controller().Dragging())
}

func TestUnmount(t *testing.T) {
	r := newRig(t)
	r.layout(seed()[:2])
	assert.True(t, r.host.Unmount(1))
	r.sched.Run()
	assert.Equal(t, []int{2}, r.host.Keys())
	assert.True(t, r.host.Unmount(2))
	assert.False(t, r.host.Unmount(2))
	r.host.StopAll()
	assert.Zero(t, r.host.Active())
}
