// SPDX-License-Identifier: MIT

// Package surface holds the numeric half of surface rendering: the scale
// factor that turns raw table values into bounded heights, and the axis
// captions/tick labels drawn next to the surface.
//
// Heights are value × ScaleFactor. 0 always renders at height 0 (no bias) and
// the largest magnitude in either direction reaches exactly the target height.
// Mesh construction, cameras and text sprites live in the rendering layer.
package surface
