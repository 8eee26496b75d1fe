// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strconv"
	"strings"
)

// Basis is an ordered triple of lattice vectors, stored as the rows u1, u2, u3
// of a 3×3 integer matrix.
type Basis [3]Vec

// Identity returns the standard basis of Z³.
func Identity() Basis {
	return Basis{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Det returns the triple scalar product u1·(u2×u3), i.e. the determinant of
// the matrix with rows u1, u2, u3.
func (b Basis) Det() int {
	return b[0].Cross(b[1]).Dot(b[2])
}

// IsUnimodular reports whether b preserves both volume and orientation
// (Det == +1). Determinant −1 bases are deliberately rejected.
func (b Basis) IsUnimodular() bool {
	return b.Det() == 1
}

// Entries returns the nine matrix entries in row-major order
// (u11 u12 u13 u21 … u33).
func (b Basis) Entries() [9]int {
	return [9]int{
		b[0].X, b[0].Y, b[0].Z,
		b[1].X, b[1].Y, b[1].Z,
		b[2].X, b[2].Y, b[2].Z,
	}
}

// BasisFromEntries is the inverse of Entries.
func BasisFromEntries(e [9]int) Basis {
	return Basis{
		{e[0], e[1], e[2]},
		{e[3], e[4], e[5]},
		{e[6], e[7], e[8]},
	}
}

// ParseBasis reads nine integers separated by spaces and/or commas,
// e.g. "1 1 0, 0 0 1, 1 0 0".
//
// Errors:
//   - ErrBasisShape if the field count is not nine.
//   - a wrapped strconv error if a field is not an integer.
func ParseBasis(s string) (Basis, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 9 {
		return Basis{}, fmt.Errorf("ParseBasis: got %d fields: %w", len(fields), ErrBasisShape)
	}
	var e [9]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Basis{}, fmt.Errorf("ParseBasis: entry %d: %w", i+1, err)
		}
		e[i] = v
	}

	return BasisFromEntries(e), nil
}

// String renders b as "u11 u12 u13   u21 u22 u23   u31 u32 u33".
func (b Basis) String() string {
	e := b.Entries()
	return fmt.Sprintf("%d %d %d   %d %d %d   %d %d %d",
		e[0], e[1], e[2], e[3], e[4], e[5], e[6], e[7], e[8])
}
