package layout

import (
	"strings"

	"github.com/ardnew/softkbd/hid"
)

// reverse maps single steps back to characters. Two-step sequences are
// handled by the Decoder's dead-key state.
var reverse = map[Step]rune{}

// deadKeys maps the arming step of each two-step sequence to the step
// that completes it and the resulting character.
var deadKeys = map[Step]struct {
	next Step
	char rune
}{}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		addReverse(c)
		addReverse(c - 'a' + 'A')
	}
	for c := '0'; c <= '9'; c++ {
		addReverse(c)
	}
	for _, c := range punctuationOrder {
		addReverse(c)
	}
	for _, c := range specialOrder {
		seq := special[c]
		switch len(seq) {
		case 1:
			if _, ok := reverse[seq[0]]; !ok {
				reverse[seq[0]] = c
			}
		case 2:
			deadKeys[seq[0]] = struct {
				next Step
				char rune
			}{seq[1], c}
		}
	}
}

func addReverse(c rune) {
	key, mod := Resolve(c)
	s := Step{Mod: mod, Key: key}
	if _, ok := reverse[s]; !ok {
		reverse[s] = c
	}
}

// Decoder turns the reports or steps a host receives back into text. It
// mirrors what a Swiss German host would print: a key press produces a
// character when it goes down, and AltGr+E waits for the following key to
// decide between € and the acute é.
//
// Decoding is lossy where the layout is ambiguous: ":" and "<" share
// Shift+comma and decode as ":", and "€" followed by "2" decodes as "é".
type Decoder struct {
	prev  hid.KeyboardReport
	armed *Step
}

// Report feeds one boot keyboard report and returns the text it completes.
func (d *Decoder) Report(r hid.KeyboardReport) string {
	var b strings.Builder
	for _, k := range r.Held() {
		if !held(d.prev, k) {
			b.WriteString(d.Step(Step{Mod: r.Modifiers, Key: k}))
		}
	}
	d.prev = r
	return b.String()
}

func held(r hid.KeyboardReport, k hid.Usage) bool {
	for _, h := range r.Keys {
		if h == k {
			return true
		}
	}
	return false
}

// Step feeds one key press with its modifiers and returns the text it
// completes, which may be empty while a dead key is armed.
func (d *Decoder) Step(s Step) string {
	if d.armed != nil {
		armed := *d.armed
		d.armed = nil
		if dk := deadKeys[armed]; dk.next == s {
			return string(dk.char)
		}
		return d.lone(armed) + d.Step(s)
	}
	if _, ok := deadKeys[s]; ok {
		d.armed = &s
		return ""
	}
	if c, ok := reverse[s]; ok {
		return string(c)
	}
	return ""
}

// lone returns what an armed step prints when nothing completes it.
func (d *Decoder) lone(s Step) string {
	if c, ok := reverse[s]; ok {
		return string(c)
	}
	return ""
}

// Flush resolves a pending dead key on its own and resets the decoder.
func (d *Decoder) Flush() string {
	var out string
	if d.armed != nil {
		out = d.lone(*d.armed)
	}
	d.armed = nil
	d.prev.Clear()
	return out
}

// Decode returns the text produced by steps.
func Decode(steps []Step) string {
	var d Decoder
	var b strings.Builder
	for _, s := range steps {
		b.WriteString(d.Step(s))
	}
	b.WriteString(d.Flush())
	return b.String()
}
