package hid

// KeyboardReportDescriptor is the boot keyboard report descriptor matching
// [KeyboardReport]. It is the content a Linux gadget expects in the
// report_desc attribute of its hid function.
var KeyboardReportDescriptor = []byte{
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x06, // Usage (Keyboard)
	0xA1, 0x01, // Collection (Application)
	0x05, 0x07, //   Usage Page (Keyboard/Keypad)
	0x19, 0xE0, //   Usage Minimum (Left Control)
	0x29, 0xE7, //   Usage Maximum (Right GUI)
	0x15, 0x00, //   Logical Minimum (0)
	0x25, 0x01, //   Logical Maximum (1)
	0x75, 0x01, //   Report Size (1)
	0x95, 0x08, //   Report Count (8)
	0x81, 0x02, //   Input (Data, Variable, Absolute) - Modifier byte
	0x95, 0x01, //   Report Count (1)
	0x75, 0x08, //   Report Size (8)
	0x81, 0x01, //   Input (Constant) - Reserved byte
	0x95, 0x05, //   Report Count (5)
	0x75, 0x01, //   Report Size (1)
	0x05, 0x08, //   Usage Page (LEDs)
	0x19, 0x01, //   Usage Minimum (Num Lock)
	0x29, 0x05, //   Usage Maximum (Kana)
	0x91, 0x02, //   Output (Data, Variable, Absolute) - LED report
	0x95, 0x01, //   Report Count (1)
	0x75, 0x03, //   Report Size (3)
	0x91, 0x01, //   Output (Constant) - Padding
	0x95, 0x06, //   Report Count (6)
	0x75, 0x08, //   Report Size (8)
	0x15, 0x00, //   Logical Minimum (0)
	0x26, 0xFF, 0x00, // Logical Maximum (255)
	0x05, 0x07, //   Usage Page (Keyboard/Keypad)
	0x19, 0x00, //   Usage Minimum (0)
	0x2A, 0xFF, 0x00, // Usage Maximum (255)
	0x81, 0x00, //   Input (Data, Array) - Key array
	0xC0, // End Collection
}

// Descriptor types of the HID class.
const (
	DescriptorTypeHID    = 0x21
	DescriptorTypeReport = 0x22
)

// HID country codes for localized keyboards. A host may use the code to
// pick a layout; most ignore it and use their configured one.
const (
	CountryNone        = 0x00
	CountryGerman      = 0x08
	CountrySwissFrench = 0x1A
	CountrySwissGerman = 0x1B
	CountrySwiss       = 0x1C
	CountryUS          = 0x20
)

// HIDDescriptorSize is the size of the HID class descriptor.
const HIDDescriptorSize = 9

// HIDDescriptor is the HID class descriptor that precedes the endpoint
// descriptors of a HID interface.
type HIDDescriptor struct {
	HIDVersion    uint16 // BCD release, 0x0111 for 1.11
	CountryCode   uint8
	ReportDescLen uint16
}

// KeyboardHIDDescriptor describes [KeyboardReportDescriptor] for a Swiss
// German keyboard.
func KeyboardHIDDescriptor() HIDDescriptor {
	return HIDDescriptor{
		HIDVersion:    0x0111,
		CountryCode:   CountrySwissGerman,
		ReportDescLen: uint16(len(KeyboardReportDescriptor)),
	}
}

// MarshalTo writes the descriptor to buf. It returns the number of bytes
// written, or 0 if buf is too small.
func (d HIDDescriptor) MarshalTo(buf []byte) int {
	if len(buf) < HIDDescriptorSize {
		return 0
	}
	buf[0] = HIDDescriptorSize
	buf[1] = DescriptorTypeHID
	buf[2] = byte(d.HIDVersion)
	buf[3] = byte(d.HIDVersion >> 8)
	buf[4] = d.CountryCode
	buf[5] = 1 // one report descriptor
	buf[6] = DescriptorTypeReport
	buf[7] = byte(d.ReportDescLen)
	buf[8] = byte(d.ReportDescLen >> 8)
	return HIDDescriptorSize
}
