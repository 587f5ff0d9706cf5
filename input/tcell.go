package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyName converts a tcell key event into a key table name
// Letters are case-insensitive; returns "" for keys the game never binds
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		if r == ' ' {
			return "space"
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return string(r)
		}
	}
	return ""
}
