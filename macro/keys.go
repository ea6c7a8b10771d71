package macro

import (
	"fmt"
	"strings"

	"github.com/ardnew/softkbd/hid"
	"github.com/ardnew/softkbd/pkg"
)

// ParseKeys resolves a key or combination such as "F5", "Ctrl+C" or
// "Ctrl + Shift + Esc" to usages in press order.
func ParseKeys(spec string) ([]hid.Usage, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("%w: empty key", pkg.ErrUnknownKey)
	}
	parts := strings.Split(spec, "+")
	keys := make([]hid.Usage, 0, len(parts))
	for _, p := range parts {
		u, ok := hid.LookupKey(p)
		if !ok {
			return nil, fmt.Errorf("%w: %q", pkg.ErrUnknownKey, strings.TrimSpace(p))
		}
		keys = append(keys, u)
	}
	return keys, nil
}

// Knob actions as written by the macropad editor.
const (
	KnobNone        = "None"
	KnobVolumeUp    = "Increase Volume"
	KnobVolumeDown  = "Decrease Volume"
	KnobScrollUp    = "Scroll Up"
	KnobScrollDown  = "Scroll Down"
	KnobSwitchLayer = "Switch Layer"
	KnobKeyPress    = "Key Press"
	KnobCombo       = "Key combo"
)

// Keys pressed by "Key Press" and "Key combo" knob actions without a key.
const (
	defaultKnobKey   = "ENTER"
	defaultKnobCombo = "CTRL+C"
)

// knobKeys maps the fixed knob actions to the key they press.
var knobKeys = map[string]hid.Usage{
	KnobVolumeUp:   hid.KeyVolumeUp,
	KnobVolumeDown: hid.KeyVolumeDown,
	KnobScrollUp:   hid.KeyUp,
	KnobScrollDown: hid.KeyDown,
}

// knobChord returns the keys a knob action presses. key overrides the
// default key of "Key Press" and "Key combo" actions when set.
func knobChord(action string, key *string) ([]hid.Usage, error) {
	if u, ok := knobKeys[action]; ok {
		return []hid.Usage{u}, nil
	}
	spec := ""
	if key != nil {
		spec = *key
	}
	switch action {
	case KnobKeyPress:
		if spec == "" {
			spec = defaultKnobKey
		}
	case KnobCombo:
		if spec == "" {
			spec = defaultKnobCombo
		}
	default:
		return nil, fmt.Errorf("%w: knob action %q", pkg.ErrNotSupported, action)
	}
	return ParseKeys(spec)
}
