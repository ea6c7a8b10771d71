package layout

import (
	"sync"

	"github.com/ardnew/softkbd/hid"
)

// Emitter is the keyboard a Translator types on. Press holds one key or
// modifier usage; ReleaseAll lifts everything held. Implementations send a
// report to the host for each call.
type Emitter interface {
	Press(code hid.Usage) error
	ReleaseAll() error
}

// EventKind distinguishes recorded emitter calls.
type EventKind uint8

// Recorded event kinds.
const (
	EventPress EventKind = iota
	EventReleaseAll
)

// Event is one call recorded by a Recorder.
type Event struct {
	Kind EventKind
	Code hid.Usage
}

// String renders the event as "press 0xE6" style text.
func (e Event) String() string {
	if e.Kind == EventReleaseAll {
		return "release"
	}
	return "press " + e.Code.String()
}

// Recorder is an Emitter that records calls and folds them into steps. It
// backs dry runs and tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	held   hid.KeyboardReport
	steps  []Step
}

// Press records a key press.
func (r *Recorder) Press(code hid.Usage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: EventPress, Code: code})
	r.held.Press(code)
	return nil
}

// ReleaseAll records a release and closes the current step, if any key was
// held.
func (r *Recorder) ReleaseAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: EventReleaseAll})
	if keys := r.held.Held(); len(keys) > 0 {
		r.steps = append(r.steps, Step{Mod: r.held.Modifiers, Key: keys[0]})
	}
	r.held.Clear()
	return nil
}

// Events returns a copy of the recorded calls.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Steps returns the steps completed so far, one per release that followed
// a key press.
func (r *Recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Step(nil), r.steps...)
}

// Held reports whether any key or modifier is still pressed.
func (r *Recorder) Held() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.held.Empty()
}

// Reset discards everything recorded.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.steps = nil
	r.held.Clear()
}
