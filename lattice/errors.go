// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrBound indicates a search bound below 1.
	ErrBound = errors.New("lattice: bound must be >= 1")

	// ErrBasisShape indicates that a matrix was not given as exactly nine integers.
	ErrBasisShape = errors.New("lattice: basis needs exactly 9 integer entries")
)
