// Package scene renders product previews into offscreen render textures. Each Surface owns
// one texture and a fixed perspective camera looking at the shape origin.
package scene

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"storefront/internal/config"
	"storefront/internal/geometry"
	"storefront/internal/preview"
	"storefront/internal/primitives"
)

var errTarget = errors.New("scene: render texture unavailable")

// background is the preview clear color (#f5f5f5).
var background = rl.NewColor(245, 245, 245, 255)

// Surface draws one shape into a render texture. It implements preview.Surface.
type Surface struct {
	Camera rl.Camera3D
	target rl.RenderTexture2D
	shape  geometry.Shape
	prims  *primitives.Registry
	closed bool
}

// NewSurface allocates a width×height render texture for shape. The camera sits on +Z at
// distance, looking at the origin with the given vertical field of view in degrees.
func NewSurface(prims *primitives.Registry, shape geometry.Shape, width, height int, distance, fovy float32) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scene: surface size %dx%d", width, height)
	}
	target := rl.LoadRenderTexture(int32(width), int32(height))
	if !rl.IsRenderTextureValid(target) {
		return nil, errTarget
	}
	s := &Surface{target: target, shape: shape, prims: prims}
	s.Camera.Position = rl.NewVector3(0, 0, distance)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	return s, nil
}

// Render redraws the shape at orientation o. Call outside BeginDrawing/EndDrawing.
func (s *Surface) Render(o preview.Orientation) {
	if s.closed {
		return
	}
	rl.BeginTextureMode(s.target)
	rl.ClearBackground(background)
	rl.BeginMode3D(s.Camera)
	p := s.Camera.Position
	s.prims.SetEye([3]float32{p.X, p.Y, p.Z})
	s.prims.DrawShape(s.shape, o)
	rl.EndMode3D()
	rl.EndTextureMode()
}

// Texture returns the color texture last rendered. Render textures are stored bottom-up,
// so draw it with a negative source height.
func (s *Surface) Texture() rl.Texture2D {
	return s.target.Texture
}

// Shape returns the shape this surface draws.
func (s *Surface) Shape() geometry.Shape {
	return s.shape
}

// Close releases the render texture. Meshes stay cached in the primitives registry.
func (s *Surface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	rl.UnloadRenderTexture(s.target)
}

// Factory returns a preview.SurfaceFactory that sizes each surface to its mount point,
// falling back to the configured preview size when the mount has no area.
func Factory(prims *primitives.Registry, cfg config.Preview) preview.SurfaceFactory {
	return func(m preview.Mount, shape geometry.Shape) (preview.Surface, error) {
		w, h := int(m.Bounds.Width), int(m.Bounds.Height)
		if w <= 0 || h <= 0 {
			w, h = cfg.Width, cfg.Height
		}
		return NewSurface(prims, shape, w, h, cfg.CameraDistance, cfg.FieldOfView)
	}
}
