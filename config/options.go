// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridrev/heatmap"
)

const (
	panicGridSizeInvalid   = "config: WithGridSize: n must be in [1, MaxGridSize]"
	panicSlotCountInvalid  = "config: WithSlotCount: n must be in [1, MaxSlotCount]"
	panicHeightInvalid     = "config: WithTargetHeight: h must be finite and > 0"
	panicPaletteInvalidFmt = "config: WithPalette: %v"
)

// Option mutates a Config. Constructors panic only on nonsensical values
// (programmer error); file input goes through Validate instead.
type Option func(*Config)

// WithGridSize sets the table edge length.
func WithGridSize(n int) Option {
	if n < 1 || n > MaxGridSize {
		panic(panicGridSizeInvalid)
	}

	return func(c *Config) { c.GridSize = n }
}

// WithSlotCount sets the number of table slots.
func WithSlotCount(n int) Option {
	if n < 1 || n > MaxSlotCount {
		panic(panicSlotCountInvalid)
	}

	return func(c *Config) { c.SlotCount = n }
}

// WithPalette replaces the slot colors. Every entry must parse.
func WithPalette(colors ...string) Option {
	if _, err := heatmap.ParsePalette(colors); err != nil {
		panic(fmt.Sprintf(panicPaletteInvalidFmt, err))
	}
	p := append([]string(nil), colors...)

	return func(c *Config) { c.Palette = p }
}

// WithTargetHeight sets the surface height reached by the largest |value|.
func WithTargetHeight(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		panic(panicHeightInvalid)
	}

	return func(c *Config) { c.TargetHeight = h }
}

// WithStatePath sets the snapshot file location ("" keeps state in memory).
func WithStatePath(path string) Option {
	return func(c *Config) { c.StatePath = path }
}
