package macro

import (
	"context"
	"fmt"
	"sync"

	"github.com/ardnew/softkbd/hid"
	"github.com/ardnew/softkbd/layout"
	"github.com/ardnew/softkbd/pkg"
)

// Typist is what a Pad needs from the layout translator.
type Typist interface {
	Write(ctx context.Context, text string) (layout.Stats, error)
	Chord(ctx context.Context, keys ...hid.Usage) error
}

var _ Typist = (*layout.Translator)(nil)

// Direction of a knob turn.
type Direction int

// Knob directions.
const (
	Clockwise Direction = iota
	CounterClockwise
)

// Pad runs macropad buttons and knobs against a Typist. It tracks the
// current layer, which layer-switch actions advance and wrap.
type Pad struct {
	typist Typist

	mutex sync.Mutex
	cfg   *Config
	layer int
}

// NewPad creates a Pad starting on the configuration's current layer, or
// layer 1.
func NewPad(cfg *Config, typist Typist) *Pad {
	p := &Pad{typist: typist}
	p.SetConfig(cfg)
	return p
}

// SetConfig replaces the configuration, keeping the current layer when it
// still exists.
func (p *Pad) SetConfig(cfg *Config) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.cfg = cfg
	switch {
	case p.layer == 0 && cfg.CurrentLayer >= 1 && cfg.CurrentLayer <= len(cfg.Layers):
		p.layer = cfg.CurrentLayer
	case p.layer < 1 || p.layer > len(cfg.Layers):
		p.layer = 1
	}
}

// Layer returns the current layer number (1-based).
func (p *Pad) Layer() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.layer
}

// SetLayer selects layer n.
func (p *Pad) SetLayer(n int) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if _, err := p.cfg.Layer(n); err != nil {
		return err
	}
	p.layer = n
	return nil
}

// nextLayer advances to the next layer, wrapping to the first. Caller
// holds the mutex.
func (p *Pad) nextLayer() {
	if len(p.cfg.Layers) < 2 {
		return
	}
	p.layer = p.layer%len(p.cfg.Layers) + 1
	pkg.LogInfo(pkg.ComponentMacro, "switched layer",
		"layer", p.layer,
		"name", p.cfg.Layers[p.layer-1].Name)
}

// Press runs button n (1-based) of the current layer.
func (p *Pad) Press(ctx context.Context, n int) error {
	p.mutex.Lock()
	l, err := p.cfg.Layer(p.layer)
	if err != nil {
		p.mutex.Unlock()
		return err
	}
	b, ok := l.Button(n)
	if !ok {
		p.mutex.Unlock()
		return fmt.Errorf("%w: %d on layer %d", pkg.ErrNoSuchButton, n, p.layer)
	}
	if b.Active() && b.Action == ActionLayerSwitch {
		p.nextLayer()
		p.mutex.Unlock()
		return nil
	}
	p.mutex.Unlock()

	if !b.Active() {
		pkg.LogDebug(pkg.ComponentMacro, "inactive button", "button", n)
		return nil
	}

	pkg.LogDebug(pkg.ComponentMacro, "button", "button", n, "action", b.Action)
	switch b.Action {
	case ActionText:
		stats, err := p.typist.Write(ctx, b.Key)
		if stats.Skipped > 0 {
			pkg.LogWarn(pkg.ComponentMacro, "macro text has untypeable characters",
				"button", n,
				"skipped", stats.Skipped)
		}
		return err
	case ActionSpecialKey, ActionCombo:
		keys, err := ParseKeys(b.Key)
		if err != nil {
			return err
		}
		return p.typist.Chord(ctx, keys...)
	default:
		return fmt.Errorf("%w: button action %q", pkg.ErrNotSupported, b.Action)
	}
}

// Turn runs the turn action of knob name ("A", "B") on the current layer.
func (p *Pad) Turn(ctx context.Context, name string, dir Direction) error {
	if dir == Clockwise {
		return p.knob(ctx, name, func(k Knob) (string, *string) { return k.CWAction, k.CWKey })
	}
	return p.knob(ctx, name, func(k Knob) (string, *string) { return k.CCWAction, k.CCWKey })
}

// PressKnob runs the press action of knob name on the current layer.
func (p *Pad) PressKnob(ctx context.Context, name string) error {
	return p.knob(ctx, name, func(k Knob) (string, *string) { return k.PressAction, k.PressKey })
}

func (p *Pad) knob(ctx context.Context, name string, pick func(Knob) (string, *string)) error {
	p.mutex.Lock()
	l, err := p.cfg.Layer(p.layer)
	if err != nil {
		p.mutex.Unlock()
		return err
	}
	k, ok := l.Knobs[name]
	if !ok {
		p.mutex.Unlock()
		return fmt.Errorf("%w: knob %s on layer %d", pkg.ErrNoSuchButton, name, p.layer)
	}
	action, key := pick(k)
	switch action {
	case "", KnobNone:
		p.mutex.Unlock()
		return nil
	case KnobSwitchLayer:
		p.nextLayer()
		p.mutex.Unlock()
		return nil
	}
	p.mutex.Unlock()

	keys, err := knobChord(action, key)
	if err != nil {
		return err
	}
	return p.typist.Chord(ctx, keys...)
}
