package layout

import (
	"fmt"
	"strings"

	"github.com/ardnew/softkbd/hid"
)

// Step is one emission unit: the modifiers to hold and the single key to
// press with them. Every step is followed by a release of all keys.
type Step struct {
	Mod hid.Modifier
	Key hid.Usage
}

// String renders the step as "LShift+AltGr+E" or "2".
func (s Step) String() string {
	if s.Mod == hid.ModNone {
		return s.Key.String()
	}
	return s.Mod.String() + "+" + s.Key.String()
}

// Sequence is the ordered list of steps that produces one character. Order
// is significant: the first step of a two-step sequence arms a dead key
// that the second step resolves.
type Sequence []Step

// String renders the steps separated by ", ".
func (q Sequence) String() string {
	parts := make([]string, len(q))
	for i, s := range q {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// Keystroke pairs an input character with its classification and the
// steps that type it. Unsupported characters carry no steps.
type Keystroke struct {
	Char   rune
	Offset int // Byte offset in the input text
	Class  Class
	Steps  Sequence
}

// String renders the keystroke as `'é' special: AltGr+E, 2`.
func (k Keystroke) String() string {
	if len(k.Steps) == 0 {
		return fmt.Sprintf("%q %s", k.Char, k.Class)
	}
	return fmt.Sprintf("%q %s: %s", k.Char, k.Class, k.Steps)
}
