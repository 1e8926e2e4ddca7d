// SPDX-License-Identifier: MIT

package heatmap

import "errors"

// ErrBadColor is returned by ParseColor for text that is neither a hex color
// nor a known color name.
var ErrBadColor = errors.New("heatmap: unrecognized color")
