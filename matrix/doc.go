// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage used by matsweep.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over a two-dimensional float64 array with
//     bounds-checked accessors and deep cloning.
//   - Dense, a row-major implementation (offset = i*cols + j) with a finite-value
//     numeric policy: Set rejects NaN and ±Inf.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSameShape) shared by the
//     transform kernels.
//   - Extrema helpers (Max, SecondDistinctMax) for whole-matrix scans.
//
// Public accessors never panic on user input; they return the sentinel errors
// declared in errors.go, wrapped with method and coordinate context.
//
// Matrices in this module are small (at most 20×20), so every operation is a
// plain fixed-order loop; results are deterministic for a given input.
package matrix
