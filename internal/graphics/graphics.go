package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"storefront/internal/config"
)

// Background is the window clear color (#f9fafb).
var Background = rl.NewColor(249, 250, 251, 255)

// Hooks are the per-phase callbacks of the main loop. Any of them may be nil.
type Hooks struct {
	// Init runs once after the window and GL context exist (load fonts, textures).
	Init func()
	// Update runs each frame before drawing: input, timers, offscreen preview renders.
	Update func()
	// Draw runs each frame between BeginDrawing and EndDrawing.
	Draw func()
	// Close runs after the loop, before the window closes, to release GPU resources.
	Close func()
}

// Run opens the window described by cfg and runs the main loop until the window is closed.
// ESC is reserved for the terminal; close via the window button.
func Run(cfg config.Window, h Hooks) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	call(h.Init)
	defer call(h.Close)
	for !rl.WindowShouldClose() {
		call(h.Update)

		rl.BeginDrawing()
		rl.ClearBackground(Background)
		call(h.Draw)
		rl.EndDrawing()
	}
}

func call(f func()) {
	if f != nil {
		f()
	}
}
