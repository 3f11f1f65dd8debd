// Package terminal is the in-app command bar: a scrollback of log lines and an input line
// whose "/" commands run through a commands.Registry.
package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"storefront/internal/commands"
	"storefront/internal/logger"
)

// BarHeight is the height of the input bar in pixels.
const BarHeight = 40

const (
	prompt           = "> "
	hint             = "type /help for commands"
	fontSize         = 20
	padding          = 8
	lineHeight       = fontSize + 4
	maxLinesOnScreen = 14 // scrollback lines above the bar
	maxLineLen       = 200
)

var (
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	scrollbackColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the command bar at the bottom of the screen, toggled with ESC or the backquote
// key. While open it owns the keyboard. Lines starting with "/" run through the command
// registry; anything else prints a hint.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	history  []string
	histPos  int
	open     bool
	font     rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
}

// New returns a closed terminal that logs lines to log and runs commands through reg. It
// registers /help on reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	t := &Terminal{log: log, reg: reg}
	reg.Simple("help", "[COMMAND]", "list commands, or show one command's flags", func(args []string) error {
		if len(args) == 1 {
			if usage := reg.Flags(args[0]); usage != "" {
				t.Print(usage)
				return nil
			}
		}
		for _, line := range reg.Help() {
			t.Print(line)
		}
		return nil
	})
	return t
}

// IsOpen returns true when the terminal is visible and capturing keyboard input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetOpen shows or hides the terminal.
func (t *Terminal) SetOpen(open bool) {
	t.open = open
}

// SetFont sets the font used to draw the terminal bar. Zero texture ID = use raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Print appends an output line to the scrollback.
func (t *Terminal) Print(line string) {
	t.log.Log(line)
}

// Submit runs one line as if it had been typed.
func (t *Terminal) Submit(line string) {
	t.log.Log(prompt + line)
	t.history = append(t.history, line)
	t.histPos = len(t.history)
	args, isCmd, err := commands.Parse(line)
	switch {
	case err != nil:
		t.Print(err.Error())
	case !isCmd:
		t.Print(hint)
	default:
		if err := t.reg.Execute(args); err != nil {
			t.Print("error: " + err.Error())
		}
	}
}

// Update handles the toggle keys and, while open, editing, history, and submission.
// Call once per frame before anything else reads the keyboard.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyGrave) {
		t.open = !t.open
		drainChars() // the backquote that toggled the bar
		return
	}
	if !t.open {
		return
	}
	t.edit()
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		t.recall(-1)
	case rl.IsKeyPressed(rl.KeyDown):
		t.recall(1)
	case rl.IsKeyPressed(rl.KeyEnter), rl.IsKeyPressed(rl.KeyKpEnter):
		if line := t.inputBuf; line != "" {
			t.inputBuf = ""
			t.Submit(line)
		}
	}
}

// edit applies paste, typed characters, and backspace to the input line.
func (t *Terminal) edit() {
	if pasteChord() {
		t.inputBuf += rl.GetClipboardText()
		drainChars()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if (rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace)) && t.inputBuf != "" {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
}

// recall moves through history by step; stepping past the newest entry clears the line.
func (t *Terminal) recall(step int) {
	pos := t.histPos + step
	if pos < 0 || pos > len(t.history) {
		return
	}
	t.histPos = pos
	if pos == len(t.history) {
		t.inputBuf = ""
		return
	}
	t.inputBuf = t.history[pos]
}

func pasteChord() bool {
	mod := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	return mod && rl.IsKeyPressed(rl.KeyV)
}

func drainChars() {
	for rl.GetCharPressed() != 0 {
	}
}

// Draw draws the scrollback and the input bar along the bottom edge while open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	bar := rl.NewRectangle(0, h-BarHeight, w, BarHeight)
	back := rl.NewRectangle(0, max(bar.Y-maxLinesOnScreen*lineHeight, 0), w, 0)
	back.Height = bar.Y - back.Y
	rl.DrawRectangleRec(back, scrollbackColor)

	lines := t.log.Lines()
	lines = lines[max(len(lines)-maxLinesOnScreen, 0):]
	for i, line := range lines {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		t.text(line, padding, back.Y+padding+float32(i*lineHeight), rl.LightGray)
	}

	rl.DrawRectangleRec(bar, termBarColor)
	rl.DrawLineV(rl.NewVector2(0, bar.Y), rl.NewVector2(w, bar.Y), termLineColor)
	t.text(prompt+t.inputBuf+"|", padding, bar.Y+padding, rl.White)
}

func (t *Terminal) text(s string, x, y float32, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(x, y), fontSize, 1, c)
		return
	}
	rl.DrawText(s, int32(x), int32(y), fontSize, c)
}
