package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// namedKeys maps key table names to ebiten keys
var namedKeys = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2, "3": ebiten.KeyDigit3,
	"4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5, "6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7,
	"8": ebiten.KeyDigit8, "9": ebiten.KeyDigit9,

	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"enter": ebiten.KeyEnter,
	"tab":   ebiten.KeyTab,
	"esc":   ebiten.KeyEscape,
	"space": ebiten.KeySpace,
}

const ctrlPrefix = "ctrl+"

// binding is one key table name resolved to a physical key
type binding struct {
	name string
	key  ebiten.Key
	ctrl bool // Control must be held as well
}

// resolveKey maps a key table name to a binding
func resolveKey(name string) (binding, bool) {
	b := binding{name: name}
	base := name
	if strings.HasPrefix(name, ctrlPrefix) {
		b.ctrl = true
		base = strings.TrimPrefix(name, ctrlPrefix)
	}
	key, ok := namedKeys[base]
	if !ok {
		return binding{}, false
	}
	b.key = key
	return b, true
}

// resolveKeys maps every name it can, skipping the rest
func resolveKeys(names []string) []binding {
	bindings := make([]binding, 0, len(names))
	for _, n := range names {
		if b, ok := resolveKey(n); ok {
			bindings = append(bindings, b)
		}
	}
	return bindings
}

// pressed reports whether the binding is currently down
func (b binding) pressed() bool {
	if b.ctrl && !ebiten.IsKeyPressed(ebiten.KeyControl) {
		return false
	}
	return ebiten.IsKeyPressed(b.key)
}
