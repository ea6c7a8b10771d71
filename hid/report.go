package hid

import (
	"fmt"
	"strings"

	"github.com/ardnew/softkbd/pkg"
)

// KeyboardReportSize is the size of a boot keyboard report in bytes.
const KeyboardReportSize = 8

// MaxKeys is the number of key slots in a boot keyboard report.
const MaxKeys = 6

// KeyboardReport is an 8-byte boot keyboard input report:
// [modifiers, reserved, key1, key2, key3, key4, key5, key6].
type KeyboardReport struct {
	Modifiers Modifier
	Reserved  uint8
	Keys      [MaxKeys]Usage
}

// Press marks a key or modifier as held. Modifier usages set their bit in
// the modifier byte; other usages take the first free key slot. Pressing a
// key that is already held is a no-op. Returns false if no slot is free.
func (r *KeyboardReport) Press(u Usage) bool {
	if u.IsModifier() {
		r.Modifiers |= u.Modifier()
		return true
	}
	if u == KeyNone {
		return true
	}
	for i := range r.Keys {
		switch r.Keys[i] {
		case u:
			return true
		case KeyNone:
			r.Keys[i] = u
			return true
		}
	}
	return false
}

// Release clears a key or modifier, keeping the remaining keys packed at
// the front of the key array.
func (r *KeyboardReport) Release(u Usage) {
	if u.IsModifier() {
		r.Modifiers &^= u.Modifier()
		return
	}
	for i := range r.Keys {
		if r.Keys[i] == u {
			copy(r.Keys[i:], r.Keys[i+1:])
			r.Keys[len(r.Keys)-1] = KeyNone
			return
		}
	}
}

// Clear resets the report to all keys released.
func (r *KeyboardReport) Clear() {
	*r = KeyboardReport{}
}

// Empty reports whether no key or modifier is held.
func (r *KeyboardReport) Empty() bool {
	return r.Modifiers == ModNone && r.Keys == [MaxKeys]Usage{}
}

// Held returns the pressed non-modifier keys in slot order.
func (r *KeyboardReport) Held() []Usage {
	var out []Usage
	for _, k := range r.Keys {
		if k != KeyNone {
			out = append(out, k)
		}
	}
	return out
}

// MarshalTo writes the report to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (r *KeyboardReport) MarshalTo(buf []byte) int {
	if len(buf) < KeyboardReportSize {
		return 0
	}
	buf[0] = byte(r.Modifiers)
	buf[1] = r.Reserved
	for i, k := range r.Keys {
		buf[2+i] = byte(k)
	}
	return KeyboardReportSize
}

// Bytes returns the report encoded as a new 8-byte array.
func (r *KeyboardReport) Bytes() [KeyboardReportSize]byte {
	var buf [KeyboardReportSize]byte
	r.MarshalTo(buf[:])
	return buf
}

// ParseKeyboardReport decodes an 8-byte boot keyboard report.
func ParseKeyboardReport(data []byte) (KeyboardReport, error) {
	var r KeyboardReport
	if len(data) < KeyboardReportSize {
		return r, fmt.Errorf("%w: %d bytes", pkg.ErrShortReport, len(data))
	}
	r.Modifiers = Modifier(data[0])
	r.Reserved = data[1]
	for i := range r.Keys {
		r.Keys[i] = Usage(data[2+i])
	}
	return r, nil
}

// String renders the report as "LShift+AltGr [E]", or "released".
func (r KeyboardReport) String() string {
	if r.Empty() {
		return "released"
	}
	keys := r.Held()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Sprintf("%s [%s]", r.Modifiers, strings.Join(names, " "))
}
