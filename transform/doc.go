// SPDX-License-Identifier: MIT

// Package transform derives a result matrix B from a square input matrix A.
//
// Two policies are available:
//
//   - GlobalTwoTier ("global-two-tier"): every cell with i+j ≥ n becomes the
//     global maximum, except cells that already hold the maximum, which take
//     the second-distinct maximum when one exists. Cells with i+j < n are
//     copied unchanged.
//
//   - LocalTriangle ("local-triangle"): B[i][j] is the maximum over a
//     right-opening triangle anchored at (i,j): for each column col ≥ j the
//     rows [i-(col-j), i+(col-j)] clamped to the matrix are visited.
//
// Quick ASCII example (LocalTriangle, n=4, anchor at row 1, col 0):
//
//	col:  0 1 2 3
//	row0  . x x x
//	row1  x x x x
//	row2  . x x x
//	row3  . . x x
//
// Both policies are pure: the input is never mutated and a fresh *matrix.Dense
// is returned. Inputs must be non-nil and square.
package transform
