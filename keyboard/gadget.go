package keyboard

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/ardnew/softkbd/hid"
	"github.com/ardnew/softkbd/pkg"
)

// DefaultDevice is the character device the Linux HID gadget function
// exposes for its first keyboard.
const DefaultDevice = "/dev/hidg0"

// ReportHook observes every report the Gadget tries to send.
type ReportHook func(report hid.KeyboardReport, status pkg.ReportStatus)

// Gadget is a keyboard that writes 8-byte boot reports to a sink, usually
// the /dev/hidgN node of a Linux USB gadget. Every Press and ReleaseAll
// sends the complete report state, so the host always sees modifiers and
// keys change together.
type Gadget struct {
	w      io.Writer
	closer io.Closer
	onSend ReportHook

	mutex  sync.Mutex
	report hid.KeyboardReport
	buf    [hid.KeyboardReportSize]byte
	sent   int
}

// Option configures a Gadget.
type Option func(*Gadget)

// WithReportHook installs a callback invoked after every send attempt.
func WithReportHook(fn ReportHook) Option {
	return func(g *Gadget) {
		g.onSend = fn
	}
}

// New creates a Gadget writing reports to w. If w is an io.Closer, Close
// closes it.
func New(w io.Writer, opts ...Option) *Gadget {
	g := &Gadget{w: w}
	if c, ok := w.(io.Closer); ok {
		g.closer = c
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Open opens a gadget device node (or any writable file or FIFO) for
// writing reports.
func Open(path string, opts ...Option) (*Gadget, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open keyboard %s: %w", path, err)
	}
	pkg.LogInfo(pkg.ComponentKeyboard, "opened keyboard", "path", path)
	return New(f, opts...), nil
}

// Press adds a key or modifier to the held state and sends the report.
func (g *Gadget) Press(code hid.Usage) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if !g.report.Press(code) {
		g.notify(pkg.ReportStatusFull)
		return fmt.Errorf("press %v: %w", code, pkg.ErrReportFull)
	}
	return g.send()
}

// Release lifts one key or modifier and sends the report.
func (g *Gadget) Release(code hid.Usage) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.report.Release(code)
	return g.send()
}

// ReleaseAll lifts every key and modifier and sends an empty report.
func (g *Gadget) ReleaseAll() error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.report.Clear()
	return g.send()
}

// Report returns the currently held state.
func (g *Gadget) Report() hid.KeyboardReport {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.report
}

// Sent returns the number of reports delivered.
func (g *Gadget) Sent() int {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.sent
}

// Close sends a final release if anything is held and closes the sink.
func (g *Gadget) Close() error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	var errs []error
	if !g.report.Empty() {
		g.report.Clear()
		errs = append(errs, g.send())
	}
	if g.closer != nil {
		errs = append(errs, g.closer.Close())
	}
	return errors.Join(errs...)
}

// send writes the current report. Caller holds the mutex.
func (g *Gadget) send() error {
	g.report.MarshalTo(g.buf[:])
	n, err := g.w.Write(g.buf[:])
	switch {
	case err != nil:
		g.notify(pkg.ReportStatusError)
		pkg.LogError(pkg.ComponentKeyboard, "report write failed",
			"report", g.report.String(),
			"error", err)
		return fmt.Errorf("%w: %w", pkg.ErrReportWrite, err)
	case n < len(g.buf):
		g.notify(pkg.ReportStatusShort)
		return fmt.Errorf("%w: %d of %d bytes", pkg.ErrShortWrite, n, len(g.buf))
	}
	g.sent++
	g.notify(pkg.ReportStatusSent)
	if pkg.LogEnabled(slog.LevelDebug) {
		pkg.LogDebug(pkg.ComponentKeyboard, "report",
			"data", fmt.Sprintf("% X", g.buf[:]),
			"state", g.report.String())
	}
	return nil
}

func (g *Gadget) notify(status pkg.ReportStatus) {
	if g.onSend != nil {
		g.onSend(g.report, status)
	}
}
