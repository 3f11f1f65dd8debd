package preview

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func TestDragRotates(t *testing.T) {
	c := NewController(0, 0)
	c.PointerDown(Point{100, 100})
	assert.True(t, c.Dragging())

	c.PointerMove(Point{110, 95})
	o := c.Orientation()
	assert.InDelta(t, 0.10, o.Yaw, eps)
	assert.InDelta(t, -0.05, o.Pitch, eps)

	// the reference point moved with the pointer
	c.PointerMove(Point{120, 95})
	assert.InDelta(t, 0.20, c.Orientation().Yaw, eps)

	c.PointerUp()
	assert.False(t, c.Dragging())
}

func TestMoveWhileIdleIgnored(t *testing.T) {
	c := NewController(0, 0)
	c.PointerMove(Point{50, 50})
	assert.Equal(t, Orientation{}, c.Orientation())
}

func TestLeaveEndsDrag(t *testing.T) {
	c := NewController(0, 0)
	c.PointerDown(Point{0, 0})
	c.PointerLeave()
	assert.False(t, c.Dragging())
	c.PointerMove(Point{40, 40})
	assert.Equal(t, Orientation{}, c.Orientation())
}

func TestIdleSpinOnlyWhenNotDragging(t *testing.T) {
	c := NewController(DefaultSensitivity, DefaultIdleSpin)
	c.Advance()
	c.Advance()
	assert.InDelta(t, 2*DefaultIdleSpin, c.Orientation().Yaw, eps)

	c.PointerDown(Point{})
	c.Advance()
	assert.InDelta(t, 2*DefaultIdleSpin, c.Orientation().Yaw, eps)
}

func TestZeroIdleSpinDisablesSpin(t *testing.T) {
	c := NewController(DefaultSensitivity, 0)
	c.Advance()
	assert.Zero(t, c.Orientation().Yaw)
}

func TestTouchUsesFirstPoint(t *testing.T) {
	mouse := NewController(0, 0)
	touch := NewController(0, 0)

	mouse.PointerDown(Point{10, 10})
	mouse.PointerMove(Point{30, 40})

	touch.TouchStart([]Point{{10, 10}, {500, 500}})
	touch.TouchMove([]Point{{30, 40}, {0, 0}})

	assert.Equal(t, mouse.Orientation(), touch.Orientation())
	touch.TouchEnd()
	assert.False(t, touch.Dragging())

	touch.TouchStart(nil)
	assert.False(t, touch.Dragging())
}

func TestAnglesWrap(t *testing.T) {
	c := NewController(1, 0)
	c.PointerDown(Point{})
	c.PointerMove(Point{X: 7})
	yaw := c.Orientation().Yaw
	assert.Less(t, math32.Abs(yaw), 2*math32.Pi)
	assert.InDelta(t, 7-2*math32.Pi, yaw, 1e-4)
}
