package macro

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/softkbd/hid"
	"github.com/ardnew/softkbd/layout"
	"github.com/ardnew/softkbd/pkg"
)

func newTestPad(t *testing.T) (*Pad, *layout.Recorder) {
	t.Helper()
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	rec := &layout.Recorder{}
	tr := layout.New(rec, layout.WithTiming(layout.Timing{}))
	return NewPad(cfg, tr), rec
}

func TestPadButtons(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		button int
		want   []layout.Step
		text   string
	}{
		{name: "text", button: 1, text: "Grüezi"},
		{name: "combo", button: 2, want: []layout.Step{{Mod: hid.ModLeftCtrl, Key: hid.KeyC}}},
		{name: "special key", button: 3, want: []layout.Step{{Mod: hid.ModNone, Key: hid.KeyF5}}},
		{name: "disabled", button: 4},
		{name: "none", button: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pad, rec := newTestPad(t)
			require.NoError(t, pad.Press(ctx, tt.button))

			if tt.text != "" {
				assert.Equal(t, tt.text, layout.Decode(rec.Steps()))
			} else {
				assert.Equal(t, tt.want, rec.Steps())
			}
			assert.False(t, rec.Held(), "keys left held")
			assert.Equal(t, 1, pad.Layer())
		})
	}
}

func TestPadLayerSwitch(t *testing.T) {
	ctx := context.Background()
	pad, rec := newTestPad(t)

	require.NoError(t, pad.Press(ctx, 6))
	assert.Equal(t, 2, pad.Layer())
	assert.Empty(t, rec.Events(), "layer switch types nothing")

	require.NoError(t, pad.Press(ctx, 1))
	assert.Equal(t, []layout.Step{
		{Mod: hid.ModLeftCtrl | hid.ModLeftAlt, Key: hid.KeyDelete},
	}, rec.Steps())

	err := pad.Press(ctx, 2)
	assert.ErrorIs(t, err, pkg.ErrNoSuchButton)

	require.NoError(t, pad.Press(ctx, 6))
	assert.Equal(t, 1, pad.Layer(), "wraps to the first layer")

	require.NoError(t, pad.SetLayer(2))
	assert.Equal(t, 2, pad.Layer())
	assert.ErrorIs(t, pad.SetLayer(3), pkg.ErrNoSuchLayer)
	assert.Equal(t, 2, pad.Layer())
}

func TestPadKnobs(t *testing.T) {
	ctx := context.Background()
	pad, rec := newTestPad(t)

	require.NoError(t, pad.Turn(ctx, "A", Clockwise))
	require.NoError(t, pad.Turn(ctx, "A", CounterClockwise))
	require.NoError(t, pad.Turn(ctx, "B", Clockwise))
	require.NoError(t, pad.Turn(ctx, "B", CounterClockwise))
	require.NoError(t, pad.PressKnob(ctx, "B"))

	assert.Equal(t, []layout.Step{
		{Mod: hid.ModNone, Key: hid.KeyVolumeUp},
		{Mod: hid.ModNone, Key: hid.KeyVolumeDown},
		{Mod: hid.ModNone, Key: hid.KeyTab},
		{Mod: hid.ModLeftCtrl, Key: hid.KeyC},
	}, rec.Steps())

	assert.ErrorIs(t, pad.Turn(ctx, "C", Clockwise), pkg.ErrNoSuchButton)

	require.NoError(t, pad.PressKnob(ctx, "A"))
	assert.Equal(t, 2, pad.Layer())
	assert.ErrorIs(t, pad.PressKnob(ctx, "A"), pkg.ErrNoSuchButton, "layer 2 has no knobs")
}

func TestPadSetConfig(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	cfg.CurrentLayer = 2

	pad := NewPad(cfg, layout.New(&layout.Recorder{}, layout.WithTiming(layout.Timing{})))
	assert.Equal(t, 2, pad.Layer(), "starts on the configured layer")

	single, err := Parse([]byte(`{"layers": [{"id": 1, "name": "only", "buttons": {}}]}`))
	require.NoError(t, err)
	pad.SetConfig(single)
	assert.Equal(t, 1, pad.Layer(), "clamped to an existing layer")

	pad.SetConfig(cfg)
	assert.Equal(t, 1, pad.Layer(), "kept when still valid")
}

func TestPadCancelled(t *testing.T) {
	pad, rec := newTestPad(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pad.Press(ctx, 1)
	assert.ErrorIs(t, err, pkg.ErrCancelled)
	assert.False(t, rec.Held())
}
