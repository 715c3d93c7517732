// SPDX-License-Identifier: MIT

package fit

import "errors"

// ErrLengthMismatch indicates that the input sample slices passed to a fit
// operation do not all have the same length. No partial computation is
// performed when it is returned.
var ErrLengthMismatch = errors.New("fit: input vector lengths do not match")
