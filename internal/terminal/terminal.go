package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Magda-Gr/physics-simulations/internal/commands"
	"github.com/Magda-Gr/physics-simulations/internal/logger"
)

const (
	BarHeight = 32
	prompt    = "> "
	fontSize  = 18
	padding   = 7
	// Number of log lines drawn above the input bar when the terminal is open.
	maxLinesOnScreen = 10
	lineHeight       = fontSize + 4
	maxLineLen       = 110
)

var (
	barColor     = rl.NewColor(40, 40, 40, 255)
	lineColor    = rl.NewColor(80, 80, 80, 255)
	historyColor = rl.NewColor(24, 24, 24, 220)
)

// Terminal is the command bar at the bottom of the window. It is shown/hidden with ESC.
// While open it captures the keyboard; arrow keys no longer push the balls.
// Lines starting with "cmd " run through the command registry; anything else is only logged.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed Terminal that logs lines and runs "cmd ..." through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the terminal is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Update handles ESC (toggle open/closed), and when open: typing, backspace, enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		t.inputBuf += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.log.Log(line)
		if line == "help" {
			for _, h := range t.reg.Help() {
				t.log.Log("cmd " + h)
			}
			return
		}
		if _, err := t.reg.ExecuteLine(line); err != nil {
			t.log.Log(err.Error())
		}
	}
}

// Draw draws the input bar and the most recent log lines above it when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	historyH := int32(maxLinesOnScreen * lineHeight)
	historyY := max(barY-historyH, 0)
	rl.DrawRectangle(0, historyY, screenW, barY-historyY, historyColor)

	lines := t.log.Lines()
	start := max(len(lines)-maxLinesOnScreen, 0)
	for i, line := range lines[start:] {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		rl.DrawText(line, padding, historyY+int32(i*lineHeight)+padding, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, lineColor)
	rl.DrawText(prompt+t.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}
