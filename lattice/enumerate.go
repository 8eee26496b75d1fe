// SPDX-License-Identifier: MIT

package lattice

import "iter"

// UnimodularBases yields every ordered triple (u1,u2,u3) drawn with repetition
// from triples whose determinant is exactly +1.
//
// Order: lexicographic in the index triple (i1, i2, i3). Consumers that keep
// "the last candidate on ties" depend on this order.
// Complexity: O(M³) determinant evaluations for M = len(triples).
func UnimodularBases(triples []Vec) iter.Seq[Basis] {
	return func(yield func(Basis) bool) {
		for i1 := range triples {
			for b := range UnimodularBasesFrom(triples, i1) {
				if !yield(b) {
					return
				}
			}
		}
	}
}

// UnimodularBasesFrom yields the bases of UnimodularBases whose first vector
// is triples[i1], in (i2, i3) order. It is the unit of work when the
// enumeration is sharded on u1. An out-of-range i1 yields nothing.
func UnimodularBasesFrom(triples []Vec, i1 int) iter.Seq[Basis] {
	return func(yield func(Basis) bool) {
		if i1 < 0 || i1 >= len(triples) {
			return
		}
		u1 := triples[i1]
		for _, u2 := range triples {
			// det = (u1×u2)·u3; hoist the cross product out of the inner loop.
			c := u1.Cross(u2)
			if c.IsZero() {
				continue
			}
			for _, u3 := range triples {
				if c.Dot(u3) != 1 {
					continue
				}
				if !yield(Basis{u1, u2, u3}) {
					return
				}
			}
		}
	}
}
