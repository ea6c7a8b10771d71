// Package hid defines the USB HID keyboard vocabulary shared by softkbd:
// Keyboard/Keypad page usages, the modifier byte, the 8-byte boot keyboard
// report and its report descriptor.
//
// # Usages and Modifiers
//
// A [Usage] names a physical key position. The eight modifier usages
// (0xE0-0xE7) map onto bits of the report's [Modifier] byte, so pressing
// [UsageRightAlt] through a report sets [ModAltGr]:
//
//	var r hid.KeyboardReport
//	r.Press(hid.UsageRightAlt)
//	r.Press(hid.KeyE)
//	buf := r.Bytes() // 40 00 08 00 00 00 00 00
//
// # Key Names
//
// [LookupKey] resolves the key names used by macropad configurations
// ("CTRL", "F5", "ENTER", single letters and digits) to usages.
package hid
