// Package layout translates text into USB HID keyboard key presses for the
// Swiss German (QWERTZ) layout.
//
// Every supported character maps to a [Sequence] of one or two [Step]
// values. A step holds a set of modifiers and one key; it is always
// followed by a release of all keys. Characters fall into the classes
// returned by [Classify]:
//
//   - Letters share one key for both cases; uppercase adds Shift.
//   - Digits 1-9 occupy 0x1E-0x26 and 0 follows at 0x27.
//   - Punctuation uses the physical Swiss key that prints it, with Shift
//     where the character sits on the upper layer.
//   - Swiss specials (ä ö ü Ä Ö Ü € @ § | é è à É È À Ç) use AltGr. The
//     acute letters é and É take two steps: AltGr+E arms the accent and
//     the 2 key selects it.
//   - Anything else is unsupported and skipped without error.
//
// # Typing
//
// A [Translator] drives an [Emitter], the device-side keyboard that sends
// reports to the host:
//
//	tr := layout.New(kbd, layout.WithTiming(layout.DefaultTiming()))
//	stats, err := tr.Write(ctx, "Grüezi@home\n")
//
// Each step presses the modifiers, waits the modifier delay, presses the
// key, holds it, releases all keys and waits the release delay. The settle
// delay separates the steps of a sequence and consecutive characters. Hosts
// that poll slowly may need longer delays; see [Timing].
//
// # Dry Runs
//
// [Translate] and [Steps] compute the same sequences without timing, and a
// [Recorder] captures what a Translator would send. [Decoder] maps reports
// back to text the way a Swiss German host would.
package layout
