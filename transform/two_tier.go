// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/matsweep/matrix"

const tagTwoTier = "TwoTier"

// TwoTier implements GlobalTwoTier.
type TwoTier struct{}

var _ Policy = TwoTier{}

// Kind returns GlobalTwoTier.
func (TwoTier) Kind() Kind { return GlobalTwoTier }

// Precision returns 2: results are printed with two decimals.
func (TwoTier) Precision() int { return 2 }

// Extrema reports the global maximum and the second-distinct maximum of a.
func (TwoTier) Extrema(a matrix.Matrix) (maxV, second float64, hasSecond bool, err error) {
	return matrix.Extrema(a)
}

// Apply replaces the lower-right triangle of a with the global extremes.
// MAIN DESCRIPTION:
//   - Cells with i+j < n are copied.
//   - Cells with i+j ≥ n become max, or second when the cell holds max and a
//     distinct second maximum exists.
//
// Implementation:
//   - Stage 1: snapshot a (validates non-nil and square).
//   - Stage 2: one extrema pass.
//   - Stage 3: one rewrite pass over the snapshot.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (TwoTier) Apply(a matrix.Matrix) (*matrix.Dense, error) {
	src, err := snapshot(tagTwoTier, a)
	if err != nil {
		return nil, err
	}
	maxV, second, hasSecond, err := matrix.Extrema(a)
	if err != nil {
		return nil, err
	}

	n := src.n
	res := grid{n: n, data: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := src.at(i, j)
			switch {
			case i+j < n:
				res.data[i*n+j] = v // upper-left region is copied
			case v == maxV && hasSecond:
				res.data[i*n+j] = second
			default:
				res.data[i*n+j] = maxV
			}
		}
	}

	return emit(tagTwoTier, res)
}
