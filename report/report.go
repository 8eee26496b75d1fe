// SPDX-License-Identifier: MIT

// Package report renders a remapping catalogue as the plain-text table
// consumed by downstream tools.
//
// Layout:
//
//	# Nmax = <bound>
//	# L1 L2 L3   u11 u12 u13   u21 u22 u23   u31 u32 u33   (periodicity)
//	<L1> <L2> <L3>   <u1>   <u2>   <u3>   (<markers>)
//
// Lengths are printed in edge order with four decimals; markers are the
// subsequence of "123" naming the edges that stay lattice-aligned.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tekkamanmaverick/BoxRemap/remap"
)

// Header is the column comment emitted after the bound line.
const Header = "# L1 L2 L3   u11 u12 u13   u21 u22 u23   u31 u32 u33   (periodicity)"

// WriteText writes the catalogue for bound to w, one line per entry in the
// given order.
func WriteText(w io.Writer, bound int, entries []remap.Remapping) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# Nmax = %d\n%s\n", bound, Header); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}
	for _, r := range entries {
		if _, err := io.WriteString(bw, Line(r)+"\n"); err != nil {
			return fmt.Errorf("WriteText: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}
	return nil
}

// Line formats one catalogue row without the trailing newline.
func Line(r remap.Remapping) string {
	l := r.Lengths()
	return fmt.Sprintf("%.4f %.4f %.4f   %v   (%s)", l[0], l[1], l[2], r.Basis(), r.Markers())
}
