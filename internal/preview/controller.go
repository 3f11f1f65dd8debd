// Package preview runs the interactive 3D product previews: one session per visible product
// card, each with its own surface, drag-to-rotate controller, and idle spin.
package preview

import "github.com/chewxy/math32"

const (
	// DefaultSensitivity converts pointer pixels to radians. Mouse and touch share it.
	DefaultSensitivity = 0.01
	// DefaultIdleSpin is the yaw added per frame while nobody is dragging.
	DefaultIdleSpin = 0.005
)

// Point is a pointer position in screen pixels.
type Point struct {
	X, Y float32
}

// Orientation is the rotation applied to a shape: Pitch around X, Yaw around Y, in radians.
type Orientation struct {
	Pitch, Yaw float32
}

// Controller is the drag state machine of one preview:
//
//	Idle --pointer down--> Dragging --pointer up / leave--> Idle
//
// Touch input drives the same machine from the first touch point.
type Controller struct {
	sensitivity float32
	idleSpin    float32
	dragging    bool
	last        Point
	orient      Orientation
}

// NewController returns an idle controller. A non-positive sensitivity or a negative idle
// spin selects the default; an idle spin of 0 disables spinning.
func NewController(sensitivity, idleSpin float32) *Controller {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	if idleSpin < 0 {
		idleSpin = DefaultIdleSpin
	}
	return &Controller{sensitivity: sensitivity, idleSpin: idleSpin}
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Orientation returns the current rotation.
func (c *Controller) Orientation() Orientation {
	return c.orient
}

// PointerDown enters Dragging and records p as the reference point.
func (c *Controller) PointerDown(p Point) {
	c.dragging = true
	c.last = p
}

// PointerMove rotates by the delta from the reference point while dragging, then makes p the
// new reference point. Moves while idle are ignored.
func (c *Controller) PointerMove(p Point) {
	if !c.dragging {
		return
	}
	dx, dy := p.X-c.last.X, p.Y-c.last.Y
	c.orient.Yaw = wrap(c.orient.Yaw + dx*c.sensitivity)
	c.orient.Pitch = wrap(c.orient.Pitch + dy*c.sensitivity)
	c.last = p
}

// PointerUp ends a drag.
func (c *Controller) PointerUp() {
	c.dragging = false
}

// PointerLeave ends a drag when the pointer exits the mount point.
func (c *Controller) PointerLeave() {
	c.dragging = false
}

// TouchStart begins a drag from the first touch point. Additional touches are ignored.
func (c *Controller) TouchStart(touches []Point) {
	if len(touches) == 0 {
		return
	}
	c.PointerDown(touches[0])
}

// TouchMove follows the first touch point.
func (c *Controller) TouchMove(touches []Point) {
	if len(touches) == 0 {
		return
	}
	c.PointerMove(touches[0])
}

// TouchEnd ends a drag.
func (c *Controller) TouchEnd() {
	c.dragging = false
}

// Advance is called once per frame and applies the idle spin when not dragging.
func (c *Controller) Advance() {
	if c.dragging {
		return
	}
	c.orient.Yaw = wrap(c.orient.Yaw + c.idleSpin)
}

const fullTurn = 2 * math32.Pi

// wrap keeps an angle inside (-2π, 2π) so long-running spins keep float32 precision.
func wrap(a float32) float32 {
	return math32.Mod(a, fullTurn)
}
