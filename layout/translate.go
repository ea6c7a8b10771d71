package layout

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Translate converts text to keystrokes without emitting anything. A base
// character followed by combining marks is composed first, so a decomposed
// "e" + U+0301 becomes é. Single characters are classified as written, even
// when NFC would map them to another character. Unsupported characters
// appear with ClassUnsupported and no steps.
func Translate(text string) []Keystroke {
	out := make([]Keystroke, 0, len(text))
	var it norm.Iter
	it.InitString(norm.NFC, text)
	for !it.Done() {
		start := it.Pos()
		seg := it.Next()
		src := text[start:it.Pos()]
		if utf8.RuneCountInString(src) == 1 {
			seg = []byte(src)
		}
		for _, r := range string(seg) {
			seq, _ := Lookup(r)
			out = append(out, Keystroke{Char: r, Offset: start, Class: Classify(r), Steps: seq})
		}
	}
	return out
}

// Steps flattens the keystrokes of text into the steps that would be
// emitted, dropping unsupported characters.
func Steps(text string) []Step {
	var out []Step
	for _, k := range Translate(text) {
		out = append(out, k.Steps...)
	}
	return out
}

// Supported reports whether every character of text can be typed.
func Supported(text string) bool {
	for _, k := range Translate(text) {
		if k.Class == ClassUnsupported {
			return false
		}
	}
	return true
}
