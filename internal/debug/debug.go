package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats is the storefront state shown under the FPS counter.
type Stats struct {
	Previews int // live preview sessions
	Pending  int // deferred mounts not yet run
	Meshes   int // cached GPU meshes
	Cart     int // items in the cart
}

// Debug holds the runtime overlays. All overlays are off by default.
type Debug struct {
	ShowFPS   bool
	ShowStats bool
	// StatsFunc is sampled when the stats text refreshes.
	StatsFunc func() Stats

	font       rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount uint32
	fpsText    string
	statsText  []string
	mem        runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the font used to draw overlays. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Lines formats s and the heap size as overlay lines.
func (s Stats) Lines(heapAlloc uint64) []string {
	return []string{
		fmt.Sprintf("Previews: %d (+%d pending)", s.Previews, s.Pending),
		fmt.Sprintf("Meshes: %d", s.Meshes),
		fmt.Sprintf("Cart: %d", s.Cart),
		fmt.Sprintf("Mem: %.2f MiB", float64(heapAlloc)/(1024*1024)),
	}
}

// Draw renders any enabled overlays at the top right, FPS first then stats.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 ||
		(d.ShowFPS && d.fpsText == "") ||
		(d.ShowStats && d.statsText == nil)

	y := float32(padding)
	if d.ShowFPS {
		if update {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowStats {
		if update {
			var s Stats
			if d.StatsFunc != nil {
				s = d.StatsFunc()
			}
			runtime.ReadMemStats(&d.mem)
			d.statsText = s.Lines(d.mem.Alloc)
		}
		for _, line := range d.statsText {
			d.drawRight(line, y)
			y += lineHeight
		}
	}
}

func (d *Debug) drawRight(text string, y float32) {
	if text == "" {
		return
	}
	screenW := float32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fontSize)
		pos := rl.NewVector2(screenW-rl.MeasureTextEx(d.font, text, sz, 1).X-padding, y)
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.DarkGreen)
		return
	}
	x := int32(screenW) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, int32(y), fontSize, rl.DarkGreen)
}
