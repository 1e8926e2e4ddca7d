// SPDX-License-Identifier: MIT

// Package heatmap derives per-cell display colors from a grid's value
// distribution and a caller-supplied base color.
//
// For every defined cell v with t = (v-min)/(max-min):
//
//	background = lerp(inverse(base), base, t)   // inverse = hue rotated 180°
//	foreground = dark if luminance(background) > 0.5 else light
//
// All-equal data (max-min <= 1e-6) uses t = 0.5; a grid without any defined
// cell paints nothing. The mapping is purely presentational: it never looks
// at slots and never changes values. Results are reproducible bit for bit.
package heatmap
