// SPDX-License-Identifier: MIT

// Package workspace is the stateful layer above the pure table engine.
//
// A Workspace owns:
//   - a fixed, ordered set of table slots, each with a name, a visibility flag,
//     a palette color and an optional Dense buffer (nil = empty slot);
//   - the revise context: a base table, a sparse percentage-modifier table and
//     the source/target slot selection;
//   - surface axis captions;
//   - an optional Store that receives debounced snapshots.
//
// Every mutating call reports what changed through a Listener and marks the
// workspace dirty. A Workspace is a single-actor object and is not safe for
// concurrent use.
package workspace
