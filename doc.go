// SPDX-License-Identifier: MIT

// Package gridrev is an in-memory engine for small, fixed-size numeric tables:
// parse them from pasted text, color them as heatmaps, scale them for 3D
// surfaces and derive new tables by applying sparse percentage modifiers.
//
// What is inside:
//
//	grid/      fixed N×N row-major buffers: Dense (every cell defined) and
//	           Sparse (cells may be unset, meaning "no change")
//	codec/     CSV/TSV parsing with delimiter auto-detection, fixed 3-decimal
//	           serialization and anchored region paste
//	heatmap/   per-cell background and contrasting foreground colors derived
//	           from a base color and the value distribution
//	revision/  base × (1 + modifier/100) algebra, single table or all slots
//	surface/   height scale factor (0 always maps to 0) and axis captions
//	workspace/ named, colored, toggleable table slots, the revise context,
//	           persistence snapshots and debounced recomputation
//	config/    YAML configuration and functional options
//
// Every operation is synchronous and deterministic. Invalid input degrades
// gracefully (zero, unset or untouched cell) instead of failing.
//
// Quick example:
//
//	base, _ := codec.ParseDense("100,50\n10,0", gridrev.DefaultSize)
//	mods, _ := codec.ParseSparse("-10,\n,5", gridrev.DefaultSize)
//	out, _ := revision.Apply(base, mods)
//	fmt.Println(codec.SerializeDense(out)) // 90.000	50.000 ...
//
//	go get github.com/katalvlaran/gridrev
package gridrev

// DefaultSize is the edge length N of every table grid unless configured otherwise.
const DefaultSize = 16

// DefaultSlotCount is the number of independent table slots in a workspace.
const DefaultSlotCount = 8
