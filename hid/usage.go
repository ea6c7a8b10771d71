package hid

import "strings"

// Usage is a Keyboard/Keypad page usage code, the physical key position
// reported to the host independent of the character it produces.
type Usage uint8

// Modifier is the modifier byte of a boot keyboard report.
type Modifier uint8

// Keyboard modifier bits.
const (
	ModNone       Modifier = 0
	ModLeftCtrl   Modifier = 1 << 0
	ModLeftShift  Modifier = 1 << 1
	ModLeftAlt    Modifier = 1 << 2
	ModLeftGUI    Modifier = 1 << 3
	ModRightCtrl  Modifier = 1 << 4
	ModRightShift Modifier = 1 << 5
	ModRightAlt   Modifier = 1 << 6
	ModRightGUI   Modifier = 1 << 7
)

// ModAltGr is the Right-Alt modifier that selects the third layer on
// European layouts.
const ModAltGr = ModRightAlt

// Modifier usages (0xE0-0xE7). Pressing one of these through a report sets
// the matching bit of the modifier byte instead of occupying a key slot.
const (
	UsageLeftCtrl   Usage = 0xE0
	UsageLeftShift  Usage = 0xE1
	UsageLeftAlt    Usage = 0xE2
	UsageLeftGUI    Usage = 0xE3
	UsageRightCtrl  Usage = 0xE4
	UsageRightShift Usage = 0xE5
	UsageRightAlt   Usage = 0xE6
	UsageRightGUI   Usage = 0xE7
)

// Keyboard usages (USB HID Usage Tables, page 0x07). Names follow the US
// legends; the Swiss layout prints different characters on several of them.
const (
	KeyNone        Usage = 0x00
	KeyA           Usage = 0x04
	KeyB           Usage = 0x05
	KeyC           Usage = 0x06
	KeyD           Usage = 0x07
	KeyE           Usage = 0x08
	KeyF           Usage = 0x09
	KeyG           Usage = 0x0A
	KeyH           Usage = 0x0B
	KeyI           Usage = 0x0C
	KeyJ           Usage = 0x0D
	KeyK           Usage = 0x0E
	KeyL           Usage = 0x0F
	KeyM           Usage = 0x10
	KeyN           Usage = 0x11
	KeyO           Usage = 0x12
	KeyP           Usage = 0x13
	KeyQ           Usage = 0x14
	KeyR           Usage = 0x15
	KeyS           Usage = 0x16
	KeyT           Usage = 0x17
	KeyU           Usage = 0x18
	KeyV           Usage = 0x19
	KeyW           Usage = 0x1A
	KeyX           Usage = 0x1B
	KeyY           Usage = 0x1C
	KeyZ           Usage = 0x1D
	Key1           Usage = 0x1E
	Key2           Usage = 0x1F
	Key3           Usage = 0x20
	Key4           Usage = 0x21
	Key5           Usage = 0x22
	Key6           Usage = 0x23
	Key7           Usage = 0x24
	Key8           Usage = 0x25
	Key9           Usage = 0x26
	Key0           Usage = 0x27
	KeyEnter       Usage = 0x28
	KeyEscape      Usage = 0x29
	KeyBackspace   Usage = 0x2A
	KeyTab         Usage = 0x2B
	KeySpace       Usage = 0x2C
	KeyMinus       Usage = 0x2D
	KeyEqual       Usage = 0x2E
	KeyLeftBrace   Usage = 0x2F
	KeyRightBrace  Usage = 0x30
	KeyBackslash   Usage = 0x31
	KeySemicolon   Usage = 0x33
	KeyQuote       Usage = 0x34
	KeyGrave       Usage = 0x35
	KeyComma       Usage = 0x36
	KeyDot         Usage = 0x37
	KeySlash       Usage = 0x38
	KeyCapsLock    Usage = 0x39
	KeyF1          Usage = 0x3A
	KeyF2          Usage = 0x3B
	KeyF3          Usage = 0x3C
	KeyF4          Usage = 0x3D
	KeyF5          Usage = 0x3E
	KeyF6          Usage = 0x3F
	KeyF7          Usage = 0x40
	KeyF8          Usage = 0x41
	KeyF9          Usage = 0x42
	KeyF10         Usage = 0x43
	KeyF11         Usage = 0x44
	KeyF12         Usage = 0x45
	KeyPrintScreen Usage = 0x46
	KeyScrollLock  Usage = 0x47
	KeyPause       Usage = 0x48
	KeyInsert      Usage = 0x49
	KeyHome        Usage = 0x4A
	KeyPageUp      Usage = 0x4B
	KeyDelete      Usage = 0x4C
	KeyEnd         Usage = 0x4D
	KeyPageDown    Usage = 0x4E
	KeyRight       Usage = 0x4F
	KeyLeft        Usage = 0x50
	KeyDown        Usage = 0x51
	KeyUp          Usage = 0x52
	KeyMute        Usage = 0x7F
	KeyVolumeUp    Usage = 0x80
	KeyVolumeDown  Usage = 0x81
)

// IsModifier reports whether u is one of the eight modifier usages.
func (u Usage) IsModifier() bool {
	return u >= UsageLeftCtrl && u <= UsageRightGUI
}

// Modifier returns the modifier bit selected by a modifier usage, or ModNone
// for ordinary keys.
func (u Usage) Modifier() Modifier {
	if !u.IsModifier() {
		return ModNone
	}
	return Modifier(1 << (u - UsageLeftCtrl))
}

// Usages returns the modifier usages for every bit set in m, lowest bit
// first. Left Shift therefore precedes Right Alt, the order in which a
// typist presses Shift+AltGr.
func (m Modifier) Usages() []Usage {
	var out []Usage
	for i := 0; i < 8; i++ {
		if m&(1<<i) != 0 {
			out = append(out, UsageLeftCtrl+Usage(i))
		}
	}
	return out
}

// Has reports whether every bit of mask is set in m.
func (m Modifier) Has(mask Modifier) bool {
	return m&mask == mask
}

var modifierNames = [8]string{
	"LCtrl", "LShift", "LAlt", "LGUI", "RCtrl", "RShift", "AltGr", "RGUI",
}

// String joins the names of the set modifier bits with "+", or returns
// "none".
func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var names []string
	for i, name := range modifierNames {
		if m&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "+")
}
