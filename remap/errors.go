// SPDX-License-Identifier: MIT

package remap

import "errors"

// ErrNotUnimodular indicates a basis whose determinant is not exactly +1.
var ErrNotUnimodular = errors.New("remap: basis determinant is not +1")
