package views

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"storefront/internal/preview"
	"storefront/internal/scene"
	"storefront/internal/ui"
)

// renderer implements ui.Renderer with raylib.
type renderer struct {
	font rl.Font
	host *preview.Host
}

func rect(r ui.Rect) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.Width, r.Height)
}

func (r *renderer) FillRect(b ui.Rect, c color.RGBA) {
	rl.DrawRectangleRec(rect(b), c)
}

func (r *renderer) StrokeRect(b ui.Rect, c color.RGBA) {
	rl.DrawRectangleLinesEx(rect(b), 1, c)
}

func (r *renderer) Text(s string, x, y float32, size int32, c color.RGBA) {
	if r.font.Texture.ID != 0 {
		rl.DrawTextEx(r.font, s, rl.NewVector2(x, y), float32(size), 1, c)
		return
	}
	rl.DrawText(s, int32(x), int32(y), size, c)
}

func (r *renderer) MeasureText(s string, size int32) float32 {
	if r.font.Texture.ID != 0 {
		return rl.MeasureTextEx(r.font, s, float32(size), 1).X
	}
	return float32(rl.MeasureText(s, size))
}

// Preview draws the session texture for key. Render textures are stored bottom-up, hence
// the negative source height.
func (r *renderer) Preview(key int, b ui.Rect) {
	s, ok := r.host.Session(key)
	if !ok {
		return
	}
	surf, ok := s.Surface().(*scene.Surface)
	if !ok {
		return
	}
	tex := surf.Texture()
	src := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
	rl.DrawTexturePro(tex, src, rect(b), rl.NewVector2(0, 0), 0, rl.White)
}
