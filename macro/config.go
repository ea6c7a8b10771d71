package macro

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ardnew/softkbd/pkg"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "macropad.schema.json"

var schema = jsonschema.MustCompileString(schemaURL, schemaJSON)

// Button actions as written by the macropad editor.
const (
	ActionNone        = "None"
	ActionText        = "Type Text"
	ActionSpecialKey  = "Special Key"
	ActionCombo       = "Key combo"
	ActionLayerSwitch = "Layer Switch"
)

// Button is the configuration of one macropad button.
type Button struct {
	Action  string `json:"action"`
	Key     string `json:"key,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// Active reports whether pressing the button does anything. Buttons are
// enabled unless explicitly disabled.
func (b Button) Active() bool {
	if b.Enabled != nil && !*b.Enabled {
		return false
	}
	return b.Action != "" && b.Action != ActionNone
}

// Knob is the configuration of one rotary encoder.
type Knob struct {
	CWAction    string  `json:"cwAction,omitempty"`
	CCWAction   string  `json:"ccwAction,omitempty"`
	PressAction string  `json:"pressAction,omitempty"`
	CWKey       *string `json:"cwKey,omitempty"`
	CCWKey      *string `json:"ccwKey,omitempty"`
	PressKey    *string `json:"pressKey,omitempty"`
}

// Layer is one page of button and knob assignments.
type Layer struct {
	ID      int               `json:"id"`
	Name    string            `json:"name"`
	Buttons map[string]Button `json:"buttons"`
	Knobs   map[string]Knob   `json:"knobs,omitempty"`
}

// Button returns the button numbered n (1-based).
func (l *Layer) Button(n int) (Button, bool) {
	b, ok := l.Buttons[strconv.Itoa(n)]
	return b, ok
}

// Config is a macropad configuration file.
type Config struct {
	Version      string  `json:"version,omitempty"`
	Device       string  `json:"device,omitempty"`
	CurrentLayer int     `json:"currentLayer,omitempty"`
	Layers       []Layer `json:"layers"`
}

// Layer returns layer n (1-based).
func (c *Config) Layer(n int) (*Layer, error) {
	if n < 1 || n > len(c.Layers) {
		return nil, fmt.Errorf("%w: %d of %d", pkg.ErrNoSuchLayer, n, len(c.Layers))
	}
	return &c.Layers[n-1], nil
}

// Parse validates data against the macropad schema and decodes it.
func Parse(data []byte) (*Config, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", pkg.ErrInvalidConfig, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", pkg.ErrInvalidConfig, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", pkg.ErrInvalidConfig, err)
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// check verifies what the schema cannot express: key names must resolve.
func (c *Config) check() error {
	for i := range c.Layers {
		for id, b := range c.Layers[i].Buttons {
			switch b.Action {
			case ActionSpecialKey, ActionCombo:
				if !b.Active() {
					continue
				}
				if _, err := ParseKeys(b.Key); err != nil {
					return fmt.Errorf("%w: layer %d button %s: %w", pkg.ErrInvalidConfig, i+1, id, err)
				}
			}
		}
	}
	return nil
}

// Load reads and parses a macropad configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read macros: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	pkg.LogDebug(pkg.ComponentMacro, "macros loaded",
		"path", path,
		"layers", len(cfg.Layers))
	return cfg, nil
}
