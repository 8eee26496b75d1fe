// SPDX-License-Identifier: MIT

package lattice

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// GCD3 returns the greatest common divisor of |a|, |b| and |c|.
func GCD3(a, b, c int) int {
	return GCD(a, GCD(b, c))
}

// CoprimeTriples returns every vector in [−n,+n]³ whose components share no
// common factor, in lexicographic (X, Y, Z) ascending order. The zero vector
// is excluded because its gcd is 0.
//
// Returns ErrBound if n < 1.
// Complexity: O(n³·log n) time, O(n³) memory.
func CoprimeTriples(n int) ([]Vec, error) {
	if n < 1 {
		return nil, ErrBound
	}
	side := 2*n + 1
	out := make([]Vec, 0, side*side*side)
	for a := -n; a <= n; a++ {
		for b := -n; b <= n; b++ {
			for c := -n; c <= n; c++ {
				if GCD3(a, b, c) == 1 {
					out = append(out, Vec{X: a, Y: b, Z: c})
				}
			}
		}
	}

	return out, nil
}
