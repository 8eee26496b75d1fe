// SPDX-License-Identifier: MIT

package remap

// DescendingBonus is the default score adjustment for a remapping whose edges
// already come in descending order (L1 > L2 > L3), so that the axes need no
// relabelling when the cuboid is presented.
const DescendingBonus = -10

// Weights parameterizes the tie-break score between remappings of the same
// shape. Lower scores are preferred. The score is a presentation preference
// only; all remappings of one shape are physically equivalent.
type Weights struct {
	// Magnitude multiplies the sum of |uij| over the nine matrix entries.
	Magnitude int
	// Negative multiplies the number of negative entries.
	Negative int
	// Descending is added when L1 > L2 > L3.
	Descending int
}

// DefaultWeights returns {Magnitude: 1, Negative: 1, Descending: DescendingBonus}.
func DefaultWeights() Weights {
	return Weights{
		Magnitude:  1,
		Negative:   1,
		Descending: DescendingBonus,
	}
}

// Score returns the weighted complexity of r.
func (w Weights) Score(r Remapping) int {
	sum, neg := 0, 0
	for _, x := range r.u.Entries() {
		if x < 0 {
			sum -= x
			neg++
		} else {
			sum += x
		}
	}
	s := w.Magnitude*sum + w.Negative*neg
	if r.l[0] > r.l[1] && r.l[1] > r.l[2] {
		s += w.Descending
	}

	return s
}
