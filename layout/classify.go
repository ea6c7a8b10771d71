package layout

import "github.com/ardnew/softkbd/hid"

// Class is the classification of one input character.
type Class uint8

// Character classes. Every rune belongs to exactly one.
const (
	ClassUnsupported Class = iota // No key sequence; skipped silently
	ClassLetter                   // ASCII letter, Shift iff uppercase
	ClassDigit                    // ASCII digit
	ClassDirect                   // Whitespace or punctuation on an unshifted key
	ClassShifted                  // Punctuation on a key's Shift layer
	ClassSpecial                  // AltGr layer or two-step dead-key sequence
)

// String returns a short name for the class.
func (c Class) String() string {
	switch c {
	case ClassLetter:
		return "letter"
	case ClassDigit:
		return "digit"
	case ClassDirect:
		return "direct"
	case ClassShifted:
		return "shifted"
	case ClassSpecial:
		return "special"
	default:
		return "unsupported"
	}
}

// Classify returns the class of r.
func Classify(r rune) Class {
	switch {
	case isSpecial(r):
		return ClassSpecial
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return ClassLetter
	case r >= '0' && r <= '9':
		return ClassDigit
	}
	if _, ok := punctuation[r]; ok {
		if shifted[r] {
			return ClassShifted
		}
		return ClassDirect
	}
	return ClassUnsupported
}

func isSpecial(r rune) bool {
	_, ok := special[r]
	return ok
}

// Resolve maps a basic character (letter, digit, whitespace or punctuation)
// to its key and modifier. Characters outside the basic set, including the
// AltGr specials, resolve to hid.KeyNone.
func Resolve(r rune) (hid.Usage, hid.Modifier) {
	switch {
	case r >= 'a' && r <= 'z':
		return hid.KeyA + hid.Usage(r-'a'), hid.ModNone
	case r >= 'A' && r <= 'Z':
		return hid.KeyA + hid.Usage(r-'A'), hid.ModLeftShift
	case r >= '1' && r <= '9':
		return hid.Key1 + hid.Usage(r-'1'), hid.ModNone
	case r == '0':
		return hid.Key0, hid.ModNone
	}
	key, ok := punctuation[r]
	if !ok {
		return hid.KeyNone, hid.ModNone
	}
	if shifted[r] {
		return key, hid.ModLeftShift
	}
	return key, hid.ModNone
}

// Lookup returns the steps that type r. It returns false for unsupported
// characters. The returned sequence is a copy and may be modified.
func Lookup(r rune) (Sequence, bool) {
	if seq, ok := special[r]; ok {
		return append(Sequence(nil), seq...), true
	}
	key, mod := Resolve(r)
	if key == hid.KeyNone {
		return nil, false
	}
	return Sequence{{mod, key}}, true
}
