// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/matsweep/matrix"

const tagTriangle = "Triangle"

// Triangle implements LocalTriangle.
type Triangle struct{}

var _ Policy = Triangle{}

// Kind returns LocalTriangle.
func (Triangle) Kind() Kind { return LocalTriangle }

// Precision returns 0: results are printed rounded to integers.
func (Triangle) Precision() int { return 0 }

// Apply computes, for every cell, the maximum over its right-opening triangle.
// MAIN DESCRIPTION:
//   - For anchor (i,j) and every col in [j, n-1], with dist = col-j, rows
//     [i-dist, i+dist] clamped to [0, n-1] are visited on that column.
//   - The anchor itself is always visited (col=j, dist=0).
//
// Complexity:
//   - Time O(n⁴) worst case; n ≤ 20 keeps this trivial. Space O(n²).
func (Triangle) Apply(a matrix.Matrix) (*matrix.Dense, error) {
	src, err := snapshot(tagTriangle, a)
	if err != nil {
		return nil, err
	}

	n := src.n
	res := grid{n: n, data: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = sweep(src, i, j)
		}
	}

	return emit(tagTriangle, res)
}

// sweep returns the maximum over the triangle anchored at (i, j).
func sweep(g grid, i, j int) float64 {
	best := g.at(i, j)
	var col, row, lo, hi int
	for col = j; col < g.n; col++ {
		dist := col - j
		lo, hi = clamp(i-dist, 0, g.n-1), clamp(i+dist, 0, g.n-1)
		for row = lo; row <= hi; row++ {
			if v := g.at(row, col); v > best {
				best = v
			}
		}
	}

	return best
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
