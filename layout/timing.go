package layout

import (
	"context"
	"fmt"
	"time"

	"github.com/ardnew/softkbd/pkg"
)

// Timing holds the delays of the emission protocol. Hosts poll HID
// keyboards at a fixed interval and suppress repeats, so each press and
// release must stay visible for at least one polling period.
type Timing struct {
	// ModifierDelay separates pressing the modifiers from pressing the key.
	ModifierDelay time.Duration
	// HoldDelay is how long the key stays down before release.
	HoldDelay time.Duration
	// ReleaseDelay follows the release of every step.
	ReleaseDelay time.Duration
	// SettleDelay separates the steps of a sequence and consecutive
	// characters.
	SettleDelay time.Duration
}

// DefaultTiming returns the delays used by the firmware this layout was
// taken from: 2ms, 10ms, 2ms and 10ms.
func DefaultTiming() Timing {
	return Timing{
		ModifierDelay: 2 * time.Millisecond,
		HoldDelay:     10 * time.Millisecond,
		ReleaseDelay:  2 * time.Millisecond,
		SettleDelay:   10 * time.Millisecond,
	}
}

// Validate rejects negative delays.
func (t Timing) Validate() error {
	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"modifier delay", t.ModifierDelay},
		{"hold delay", t.HoldDelay},
		{"release delay", t.ReleaseDelay},
		{"settle delay", t.SettleDelay},
	} {
		if d.value < 0 {
			return fmt.Errorf("%w: %s %v is negative", pkg.ErrInvalidParameter, d.name, d.value)
		}
	}
	return nil
}

// PerStep is the time one step occupies, excluding the settle delay.
func (t Timing) PerStep(mod bool) time.Duration {
	d := t.HoldDelay + t.ReleaseDelay
	if mod {
		d += t.ModifierDelay
	}
	return d
}

// Estimate returns how long typing text takes with these delays.
func (t Timing) Estimate(text string) time.Duration {
	var total time.Duration
	for _, k := range Translate(text) {
		if len(k.Steps) == 0 {
			continue
		}
		for i, s := range k.Steps {
			if i > 0 {
				total += t.SettleDelay
			}
			total += t.PerStep(s.Mod != 0)
		}
		total += t.SettleDelay
	}
	return total
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// sleep is the default Sleeper backed by a timer.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
