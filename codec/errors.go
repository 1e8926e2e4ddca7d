// SPDX-License-Identifier: MIT

package codec

import "errors"

// ErrNoContent is returned by ParseDense/ParseSparse when the input is empty
// or whitespace-only. It is the "absent" result, not a malformed-input error.
var ErrNoContent = errors.New("codec: no content")
