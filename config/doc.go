// SPDX-License-Identifier: MIT

// Package config holds the user-tunable settings of a workspace: grid size,
// number of table slots, slot palette, surface height and where the state
// snapshot is persisted.
//
// Settings come from three layers, later layers winning:
//   - Default(): documented DefaultX constants.
//   - A YAML file (Load / Parse); absent keys keep the defaults.
//   - Functional options (New(opts...)) for programmatic overrides.
//
// Validate reports the first inconsistency as a wrapped sentinel error.
package config
