// SPDX-License-Identifier: MIT

package cuboid

import "errors"

// ErrUncovered indicates a point farther than SnapTolerance from every
// precomputed cell. Points of [0,1)³ never trigger it.
var ErrUncovered = errors.New("cuboid: point not contained in any cell")
