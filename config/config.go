// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridrev"
	"github.com/katalvlaran/gridrev/heatmap"
	"github.com/katalvlaran/gridrev/surface"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGridSize is the edge length N of every table.
	DefaultGridSize = gridrev.DefaultSize

	// DefaultSlotCount is the number of table slots.
	DefaultSlotCount = gridrev.DefaultSlotCount

	// DefaultNeutralColor colors grids not owned by a slot.
	DefaultNeutralColor = "#888888"

	// DefaultTargetHeight is the surface height of the most extreme value.
	DefaultTargetHeight = surface.DefaultTargetHeight

	// DefaultStatePath is where the workspace snapshot is written;
	// workspace.New attaches a FileStore there. Empty means no autosave.
	DefaultStatePath = ""
)

// Upper bounds. A table edge beyond MaxGridSize is not editable as a grid.
const (
	MaxGridSize  = 256
	MaxSlotCount = 64
)

// DefaultPalette returns the slot colors in hex form (fresh slice).
func DefaultPalette() []string {
	out := make([]string, len(heatmap.DefaultPalette))
	for i, c := range heatmap.DefaultPalette {
		out[i] = c.Hex()
	}

	return out
}

// Config is the resolved settings set.
type Config struct {
	GridSize     int      `yaml:"grid_size"`
	SlotCount    int      `yaml:"slot_count"`
	Palette      []string `yaml:"palette,omitempty"`
	NeutralColor string   `yaml:"neutral_color"`
	TargetHeight float64  `yaml:"target_height"`
	StatePath    string   `yaml:"state_path,omitempty"`
}

// Default returns a Config populated from the DefaultX constants.
func Default() Config {
	return Config{
		GridSize:     DefaultGridSize,
		SlotCount:    DefaultSlotCount,
		Palette:      DefaultPalette(),
		NeutralColor: DefaultNeutralColor,
		TargetHeight: DefaultTargetHeight,
		StatePath:    DefaultStatePath,
	}
}

// New returns Default() with opts applied in order.
func New(opts ...Option) Config {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Load reads a YAML file from path. See Parse.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over Default(), so missing keys keep their defaults, and
// validates the result. Unknown keys are rejected. Empty input yields Default().
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config.Parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks ranges and colors.
// Errors: ErrInvalidGridSize, ErrInvalidSlotCount, ErrInvalidHeight, ErrInvalidColor (wrapped).
func (c Config) Validate() error {
	if c.GridSize < 1 || c.GridSize > MaxGridSize {
		return fmt.Errorf("config: grid_size=%d: %w", c.GridSize, ErrInvalidGridSize)
	}
	if c.SlotCount < 1 || c.SlotCount > MaxSlotCount {
		return fmt.Errorf("config: slot_count=%d: %w", c.SlotCount, ErrInvalidSlotCount)
	}
	if math.IsNaN(c.TargetHeight) || math.IsInf(c.TargetHeight, 0) || c.TargetHeight <= 0 {
		return fmt.Errorf("config: target_height=%g: %w", c.TargetHeight, ErrInvalidHeight)
	}
	if _, err := heatmap.ParseColor(c.NeutralColor); err != nil {
		return fmt.Errorf("config: neutral_color: %w: %w", ErrInvalidColor, err)
	}
	if _, err := heatmap.ParsePalette(c.Palette); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalidColor, err)
	}

	return nil
}

// ResolvedPalette parses Palette, falling back to heatmap.DefaultPalette when
// it is empty. Call Validate first; parse failures fall back too.
func (c Config) ResolvedPalette() heatmap.Palette {
	if len(c.Palette) == 0 {
		return heatmap.DefaultPalette
	}
	p, err := heatmap.ParsePalette(c.Palette)
	if err != nil {
		return heatmap.DefaultPalette
	}

	return p
}

// Neutral parses NeutralColor, falling back to heatmap.Neutral.
func (c Config) Neutral() heatmap.Color {
	col, err := heatmap.ParseColor(c.NeutralColor)
	if err != nil {
		return heatmap.Neutral
	}

	return col
}
