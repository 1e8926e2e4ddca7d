// SPDX-License-Identifier: MIT

package surface

import (
	"strconv"
	"strings"
)

// Axis describes one labelled axis of the surface plot.
type Axis struct {
	Label string   `json:"label" yaml:"label"`
	Units string   `json:"units" yaml:"units"`
	Ticks []string `json:"ticks,omitempty" yaml:"ticks,omitempty"`
}

// Axes groups the three axes: X runs along columns, Y along rows and Z is the
// value (height) axis, which carries no tick labels.
type Axes struct {
	X Axis `json:"x" yaml:"x"`
	Y Axis `json:"y" yaml:"y"`
	Z Axis `json:"z" yaml:"z"`
}

// Tick is a visible tick label at a grid index.
type Tick struct {
	Index int
	Label string
}

// ParseTicks splits a comma-separated list, trimming entries and dropping
// empty ones. "" yields nil.
func ParseTicks(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// FormatTicks is the inverse of ParseTicks for persistence.
func FormatTicks(ticks []string) string {
	return strings.Join(ticks, ", ")
}

// Caption renders "label (units)", "label", "(units)" or "" when both are empty.
func (a Axis) Caption() string {
	switch {
	case a.Label == "" && a.Units == "":
		return ""
	case a.Units == "":
		return a.Label
	case a.Label == "":
		return "(" + a.Units + ")"
	}

	return a.Label + " (" + a.Units + ")"
}

// TickLabel returns the custom tick for index i, falling back to the index.
func (a Axis) TickLabel(i int) string {
	if i >= 0 && i < len(a.Ticks) {
		return a.Ticks[i]
	}

	return strconv.Itoa(i)
}

// TickVisible thins labels on large grids: with more than 8 cells only every
// third index is labelled.
func TickVisible(i, n int) bool {
	return n <= 8 || i%3 == 0
}

// Labels returns the visible ticks for an n-cell axis.
func (a Axis) Labels(n int) []Tick {
	out := make([]Tick, 0, n)
	for i := 0; i < n; i++ {
		if TickVisible(i, n) {
			out = append(out, Tick{Index: i, Label: a.TickLabel(i)})
		}
	}

	return out
}
