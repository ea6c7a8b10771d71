package hid

import (
	"fmt"
	"strings"
)

// keyNames maps macro key names to usages. Letters and digits are added in
// init; names are matched case-insensitively.
var keyNames = map[string]Usage{
	"SPACE":       KeySpace,
	"ENTER":       KeyEnter,
	"TAB":         KeyTab,
	"ESC":         KeyEscape,
	"ESCAPE":      KeyEscape,
	"BACKSPACE":   KeyBackspace,
	"DELETE":      KeyDelete,
	"INSERT":      KeyInsert,
	"HOME":        KeyHome,
	"END":         KeyEnd,
	"PAGEUP":      KeyPageUp,
	"PAGEDOWN":    KeyPageDown,
	"UP":          KeyUp,
	"DOWN":        KeyDown,
	"LEFT":        KeyLeft,
	"RIGHT":       KeyRight,
	"PRINTSCREEN": KeyPrintScreen,
	"CAPSLOCK":    KeyCapsLock,
	"MUTE":        KeyMute,
	"VOLUME_UP":   KeyVolumeUp,
	"VOLUME_DOWN": KeyVolumeDown,
	"SHIFT":       UsageLeftShift,
	"CTRL":        UsageLeftCtrl,
	"CONTROL":     UsageLeftCtrl,
	"ALT":         UsageLeftAlt,
	"ALTGR":       UsageRightAlt,
	"WIN":         UsageLeftGUI,
	"GUI":         UsageLeftGUI,
}

// usageNames is the reverse of keyNames for String. Where a usage has
// several names it holds the shortest, then the lexically smallest.
var usageNames = map[Usage]string{}

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		keyNames[string(c)] = KeyA + Usage(c-'A')
	}
	for c := '1'; c <= '9'; c++ {
		keyNames[string(c)] = Key1 + Usage(c-'1')
	}
	keyNames["0"] = Key0
	for i := 0; i < 12; i++ {
		keyNames[fmt.Sprintf("F%d", i+1)] = KeyF1 + Usage(i)
	}
	for name, u := range keyNames {
		if prev, ok := usageNames[u]; !ok || len(name) < len(prev) || (len(name) == len(prev) && name < prev) {
			usageNames[u] = name
		}
	}
}

// LookupKey returns the usage for a macro key name such as "CTRL", "F5" or
// "a". It returns false for unknown names.
func LookupKey(name string) (Usage, bool) {
	u, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]
	return u, ok
}

// String returns the key name of u, or its hex code when it has none.
func (u Usage) String() string {
	if name, ok := usageNames[u]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint8(u))
}
