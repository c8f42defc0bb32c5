// Package keyboard exposes keyboard queries and commands as a thin layer
// over a host-owned Backend. Key state, text input and key repeat all live
// in the host runtime; this package only owns the key/scancode mapping
// tables.
package keyboard

import "github.com/kamstrup/intmap"

// Key is a layout-dependent key constant: the meaning of the key under the
// user's keyboard layout.
type Key int

// Scancode is a layout-independent physical key identifier: the same
// physical key reports the same scancode on every layout.
type Scancode int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

const (
	ScancodeUnknown Scancode = iota
	ScancodeA
	ScancodeB
	ScancodeC
	ScancodeD
	ScancodeE
	ScancodeF
	ScancodeG
	ScancodeH
	ScancodeI
	ScancodeJ
	ScancodeK
	ScancodeL
	ScancodeM
	ScancodeN
	ScancodeO
	ScancodeP
	ScancodeQ
	ScancodeR
	ScancodeS
	ScancodeT
	ScancodeU
	ScancodeV
	ScancodeW
	ScancodeX
	ScancodeY
	ScancodeZ
	Scancode0
	Scancode1
	Scancode2
	Scancode3
	Scancode4
	Scancode5
	Scancode6
	Scancode7
	Scancode8
	Scancode9
	ScancodeSpace
	ScancodeEnter
	ScancodeEscape
	ScancodeBackspace
	ScancodeTab
	ScancodeLeft
	ScancodeRight
	ScancodeUp
	ScancodeDown
	ScancodeLeftShift
	ScancodeRightShift
	ScancodeLeftControl
	ScancodeRightControl
	ScancodeLeftAlt
	ScancodeRightAlt
	ScancodeF1
	ScancodeF2
	ScancodeF3
	ScancodeF4
	ScancodeF5
	ScancodeF6
	ScancodeF7
	ScancodeF8
	ScancodeF9
	ScancodeF10
	ScancodeF11
	ScancodeF12
	scancodeCount
)

// TextInputRect positions the on-screen keyboard or IME candidate window.
type TextInputRect struct {
	X, Y, W, H int
}

// Backend is the host runtime servicing all keyboard state. Implementations
// live outside this package (see the ebiten subpackage).
type Backend interface {
	// IsScancodeDown reports whether the physical key is currently held.
	IsScancodeDown(Scancode) bool

	// SetTextInput enables or disables text input, positioning the
	// on-screen keyboard inside the given rectangle when enabled.
	SetTextInput(enabled bool, rect TextInputRect)

	// HasTextInput reports whether text input is enabled.
	HasTextInput() bool

	// SetKeyRepeat enables or disables repeated key-press events while a
	// key is held.
	SetKeyRepeat(enabled bool)

	// HasKeyRepeat reports whether key repeat is enabled.
	HasKeyRepeat() bool
}

// The layout tables assume a US layout, where keys and scancodes pair 1:1.
// Hosts with layout awareness can override the mapping via RemapKey.
var (
	keyToScancode = intmap.New[Key, Scancode](int(scancodeCount))
	scancodeToKey = intmap.New[Scancode, Key](int(scancodeCount))
)

func init() {
	// Keys and scancodes are declared in lockstep, so the default table
	// pairs them positionally.
	for code := ScancodeA; code < scancodeCount; code++ {
		keyToScancode.Put(Key(code), code)
		scancodeToKey.Put(code, Key(code))
	}
}

var backend Backend

// Use installs the host backend. It must be called before any query.
func Use(b Backend) {
	if b == nil {
		panic("keyboard backend cannot be nil")
	}
	backend = b
}

func host() Backend {
	if backend == nil {
		panic("no keyboard backend installed, call keyboard.Use first")
	}
	return backend
}

// RemapKey repoints a layout-dependent key at a different physical key.
// The key previously produced by that physical key is left unmapped, so the
// two tables always stay mutually inverse.
func RemapKey(key Key, code Scancode) {
	if old, ok := keyToScancode.Get(key); ok {
		scancodeToKey.Del(old)
	}
	if displaced, ok := scancodeToKey.Get(code); ok && displaced != key {
		keyToScancode.Del(displaced)
	}
	keyToScancode.Put(key, code)
	scancodeToKey.Put(code, key)
}

// GetScancodeFromKey returns the physical key the given layout key maps to,
// or ScancodeUnknown.
func GetScancodeFromKey(key Key) Scancode {
	code, ok := keyToScancode.Get(key)
	if !ok {
		return ScancodeUnknown
	}
	return code
}

// GetKeyFromScancode returns the layout key produced by the given physical
// key, or KeyUnknown.
func GetKeyFromScancode(code Scancode) Key {
	key, ok := scancodeToKey.Get(code)
	if !ok {
		return KeyUnknown
	}
	return key
}

// IsDown reports whether any of the given keys is currently held.
func IsDown(keys ...Key) bool {
	b := host()
	for _, key := range keys {
		if code, ok := keyToScancode.Get(key); ok && b.IsScancodeDown(code) {
			return true
		}
	}
	return false
}

// IsScancodeDown reports whether any of the given physical keys is
// currently held.
func IsScancodeDown(codes ...Scancode) bool {
	b := host()
	for _, code := range codes {
		if b.IsScancodeDown(code) {
			return true
		}
	}
	return false
}

// SetTextInput enables or disables text input. An optional rectangle
// positions the on-screen keyboard.
func SetTextInput(enabled bool, rect ...TextInputRect) {
	r := TextInputRect{}
	if len(rect) > 0 {
		r = rect[0]
	}
	host().SetTextInput(enabled, r)
}

// HasTextInput reports whether text input is enabled.
func HasTextInput() bool {
	return host().HasTextInput()
}

// SetKeyRepeat enables or disables key repeat.
func SetKeyRepeat(enabled bool) {
	host().SetKeyRepeat(enabled)
}

// HasKeyRepeat reports whether key repeat is enabled.
func HasKeyRepeat() bool {
	return host().HasKeyRepeat()
}
