// Package keyboard implements layout.Emitter on top of a boot keyboard
// report sink.
//
// On Linux a USB device controller configured with the HID gadget function
// exposes /dev/hidgN; each 8-byte write becomes one interrupt IN report to
// the host. The report descriptor to configure for that function is
// hid.KeyboardReportDescriptor.
//
//	kbd, err := keyboard.Open(keyboard.DefaultDevice)
//	if err != nil {
//	    return err
//	}
//	defer kbd.Close()
//	tr := layout.New(kbd)
//	tr.Write(ctx, "Grüezi\n")
//
// Any io.Writer works as a sink, which makes dry runs and tests simple:
// write to io.Discard and observe reports with [WithReportHook].
package keyboard
