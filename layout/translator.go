package layout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ardnew/softkbd/hid"
	"github.com/ardnew/softkbd/pkg"
)

// Stats summarizes one Write.
type Stats struct {
	Typed   int // Characters emitted
	Skipped int // Unsupported characters dropped
	Steps   int // Emission steps sent
}

// Translator types text on an Emitter using the Swiss German layout. It
// keeps no state between characters; the mutex only keeps concurrent Write
// calls from interleaving reports on the shared emitter.
type Translator struct {
	emitter Emitter
	timing  Timing
	sleep   Sleeper
	onSkip  func(r rune, offset int)

	mutex sync.Mutex
}

// Option configures a Translator.
type Option func(*Translator)

// WithTiming replaces the default delays.
func WithTiming(t Timing) Option {
	return func(tr *Translator) {
		tr.timing = t
	}
}

// WithSleeper replaces the timer-based wait between reports.
func WithSleeper(s Sleeper) Option {
	return func(tr *Translator) {
		if s != nil {
			tr.sleep = s
		}
	}
}

// WithSkipHook installs a callback invoked for every unsupported character
// with its byte offset in the input text.
func WithSkipHook(fn func(r rune, offset int)) Option {
	return func(tr *Translator) {
		tr.onSkip = fn
	}
}

// New creates a Translator typing on e.
func New(e Emitter, opts ...Option) *Translator {
	t := &Translator{
		emitter: e,
		timing:  DefaultTiming(),
		sleep:   sleep,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Timing returns the delays in use.
func (t *Translator) Timing() Timing {
	return t.timing
}

// Write types text. Unsupported characters are skipped and counted; they
// never cause an error. An error is returned only when the emitter fails
// or ctx is done, and in both cases every key has been released.
func (t *Translator) Write(ctx context.Context, text string) (Stats, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	var stats Stats
	for _, k := range Translate(text) {
		if len(k.Steps) == 0 {
			stats.Skipped++
			pkg.LogDebug(pkg.ComponentLayout, "skipped unsupported character",
				"char", fmt.Sprintf("%q", k.Char),
				"offset", k.Offset)
			if t.onSkip != nil {
				t.onSkip(k.Char, k.Offset)
			}
			continue
		}

		n, err := t.emitSequence(ctx, k.Steps)
		stats.Steps += n
		if err != nil {
			return stats, t.fail(ctx, k.Char, err)
		}
		stats.Typed++

		if err := t.sleep(ctx, t.timing.SettleDelay); err != nil {
			return stats, t.fail(ctx, k.Char, err)
		}
	}

	pkg.LogDebug(pkg.ComponentLayout, "typed text",
		"typed", stats.Typed,
		"skipped", stats.Skipped,
		"steps", stats.Steps)
	return stats, nil
}

// WriteString types text with a background context. It satisfies callers
// that only need the silent-skip contract and no cancellation.
func (t *Translator) WriteString(text string) (Stats, error) {
	return t.Write(context.Background(), text)
}

// fail wraps err with the character being typed. Context errors are also
// marked with pkg.ErrCancelled.
func (t *Translator) fail(ctx context.Context, r rune, err error) error {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return fmt.Errorf("%w at %q: %w", pkg.ErrCancelled, r, err)
	}
	return fmt.Errorf("typing %q: %w", r, err)
}

// emitSequence sends each step in order with the settle delay between
// steps. It returns the number of steps sent.
func (t *Translator) emitSequence(ctx context.Context, seq Sequence) (int, error) {
	for i, s := range seq {
		if i > 0 {
			if err := t.sleep(ctx, t.timing.SettleDelay); err != nil {
				return i, err
			}
		}
		if err := t.emitStep(ctx, s); err != nil {
			return i, err
		}
	}
	return len(seq), nil
}

// emitStep presses the modifiers and key of s, holds them, and releases
// everything. The release runs on every return path.
func (t *Translator) emitStep(ctx context.Context, s Step) (err error) {
	defer func() {
		if rerr := t.emitter.ReleaseAll(); err == nil {
			err = rerr
		}
		if err == nil {
			err = t.sleep(ctx, t.timing.ReleaseDelay)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Mod != 0 {
		for _, u := range s.Mod.Usages() {
			if err := t.emitter.Press(u); err != nil {
				return err
			}
		}
		if err := t.sleep(ctx, t.timing.ModifierDelay); err != nil {
			return err
		}
	}
	if err := t.emitter.Press(s.Key); err != nil {
		return err
	}
	return t.sleep(ctx, t.timing.HoldDelay)
}

// Chord presses keys together, holds them and releases everything, for
// shortcuts such as CTRL+C that have no character. Modifier usages may be
// mixed with ordinary keys.
func (t *Translator) Chord(ctx context.Context, keys ...hid.Usage) (err error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if len(keys) == 0 {
		return nil
	}
	defer func() {
		if rerr := t.emitter.ReleaseAll(); err == nil {
			err = rerr
		}
		if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			err = fmt.Errorf("%w: %w", pkg.ErrCancelled, err)
		}
	}()

	for _, k := range keys {
		if err := t.emitter.Press(k); err != nil {
			return fmt.Errorf("pressing %v: %w", k, err)
		}
	}
	pkg.LogDebug(pkg.ComponentLayout, "chord", "keys", fmt.Sprint(keys))
	return t.sleep(ctx, t.timing.HoldDelay)
}
