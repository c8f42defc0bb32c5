// Package ebiten provides a keyboard.Backend implementation over the Ebiten
// game engine. Key state queries defer to Ebiten's input polling; text input
// and key repeat are tracked per backend instance since Ebiten exposes no
// global toggles for them.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/lume/keyboard"
)

// scancodeKeys maps physical scancodes to Ebiten's key identifiers, which
// are themselves layout-independent.
var scancodeKeys = map[keyboard.Scancode]ebiten.Key{
	keyboard.ScancodeA:            ebiten.KeyA,
	keyboard.ScancodeB:            ebiten.KeyB,
	keyboard.ScancodeC:            ebiten.KeyC,
	keyboard.ScancodeD:            ebiten.KeyD,
	keyboard.ScancodeE:            ebiten.KeyE,
	keyboard.ScancodeF:            ebiten.KeyF,
	keyboard.ScancodeG:            ebiten.KeyG,
	keyboard.ScancodeH:            ebiten.KeyH,
	keyboard.ScancodeI:            ebiten.KeyI,
	keyboard.ScancodeJ:            ebiten.KeyJ,
	keyboard.ScancodeK:            ebiten.KeyK,
	keyboard.ScancodeL:            ebiten.KeyL,
	keyboard.ScancodeM:            ebiten.KeyM,
	keyboard.ScancodeN:            ebiten.KeyN,
	keyboard.ScancodeO:            ebiten.KeyO,
	keyboard.ScancodeP:            ebiten.KeyP,
	keyboard.ScancodeQ:            ebiten.KeyQ,
	keyboard.ScancodeR:            ebiten.KeyR,
	keyboard.ScancodeS:            ebiten.KeyS,
	keyboard.ScancodeT:            ebiten.KeyT,
	keyboard.ScancodeU:            ebiten.KeyU,
	keyboard.ScancodeV:            ebiten.KeyV,
	keyboard.ScancodeW:            ebiten.KeyW,
	keyboard.ScancodeX:            ebiten.KeyX,
	keyboard.ScancodeY:            ebiten.KeyY,
	keyboard.ScancodeZ:            ebiten.KeyZ,
	keyboard.Scancode0:            ebiten.KeyDigit0,
	keyboard.Scancode1:            ebiten.KeyDigit1,
	keyboard.Scancode2:            ebiten.KeyDigit2,
	keyboard.Scancode3:            ebiten.KeyDigit3,
	keyboard.Scancode4:            ebiten.KeyDigit4,
	keyboard.Scancode5:            ebiten.KeyDigit5,
	keyboard.Scancode6:            ebiten.KeyDigit6,
	keyboard.Scancode7:            ebiten.KeyDigit7,
	keyboard.Scancode8:            ebiten.KeyDigit8,
	keyboard.Scancode9:            ebiten.KeyDigit9,
	keyboard.ScancodeSpace:        ebiten.KeySpace,
	keyboard.ScancodeEnter:        ebiten.KeyEnter,
	keyboard.ScancodeEscape:       ebiten.KeyEscape,
	keyboard.ScancodeBackspace:    ebiten.KeyBackspace,
	keyboard.ScancodeTab:          ebiten.KeyTab,
	keyboard.ScancodeLeft:         ebiten.KeyArrowLeft,
	keyboard.ScancodeRight:        ebiten.KeyArrowRight,
	keyboard.ScancodeUp:           ebiten.KeyArrowUp,
	keyboard.ScancodeDown:         ebiten.KeyArrowDown,
	keyboard.ScancodeLeftShift:    ebiten.KeyShiftLeft,
	keyboard.ScancodeRightShift:   ebiten.KeyShiftRight,
	keyboard.ScancodeLeftControl:  ebiten.KeyControlLeft,
	keyboard.ScancodeRightControl: ebiten.KeyControlRight,
	keyboard.ScancodeLeftAlt:      ebiten.KeyAltLeft,
	keyboard.ScancodeRightAlt:     ebiten.KeyAltRight,
	keyboard.ScancodeF1:           ebiten.KeyF1,
	keyboard.ScancodeF2:           ebiten.KeyF2,
	keyboard.ScancodeF3:           ebiten.KeyF3,
	keyboard.ScancodeF4:           ebiten.KeyF4,
	keyboard.ScancodeF5:           ebiten.KeyF5,
	keyboard.ScancodeF6:           ebiten.KeyF6,
	keyboard.ScancodeF7:           ebiten.KeyF7,
	keyboard.ScancodeF8:           ebiten.KeyF8,
	keyboard.ScancodeF9:           ebiten.KeyF9,
	keyboard.ScancodeF10:          ebiten.KeyF10,
	keyboard.ScancodeF11:          ebiten.KeyF11,
	keyboard.ScancodeF12:          ebiten.KeyF12,
}

// Backend services keyboard queries through Ebiten.
type Backend struct {
	textInput bool
	textRect  keyboard.TextInputRect
	keyRepeat bool
}

// New creates an Ebiten-backed keyboard backend.
func New() *Backend {
	return &Backend{}
}

// IsScancodeDown reports whether the physical key is held, per Ebiten's
// input state for the current frame.
func (b *Backend) IsScancodeDown(code keyboard.Scancode) bool {
	key, ok := scancodeKeys[code]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}

// SetTextInput toggles text input and records the on-screen keyboard rect.
func (b *Backend) SetTextInput(enabled bool, rect keyboard.TextInputRect) {
	b.textInput = enabled
	b.textRect = rect
}

// HasTextInput reports whether text input is enabled.
func (b *Backend) HasTextInput() bool {
	return b.textInput
}

// TextInputRect returns the rect last passed to SetTextInput.
func (b *Backend) TextInputRect() keyboard.TextInputRect {
	return b.textRect
}

// SetKeyRepeat toggles key repeat.
func (b *Backend) SetKeyRepeat(enabled bool) {
	b.keyRepeat = enabled
}

// HasKeyRepeat reports whether key repeat is enabled.
func (b *Backend) HasKeyRepeat() bool {
	return b.keyRepeat
}
