// SPDX-License-Identifier: MIT

// Package console is the text front end of matsweep.
//
// A Session reads the matrix side n and then n×n values from an io.Reader,
// applies a transform.Policy and prints the input and the result:
//
//	Enter the size of the square matrix (at most 20): 2
//	Enter the elements of the 2 x 2 matrix:
//	1 5
//	Row 1 entered
//	3 5
//	Row 2 entered
//
//	Matrix A:
//	1.00 5.00
//	3.00 5.00
//
//	Matrix B (result):
//	1.00 5.00
//	3.00 3.00
//
// Input is whitespace tokenised, so values may be split across lines freely.
// The first bad token aborts the session: a localized message is written, no
// matrix is printed, and the error (ErrInvalidDimension or ErrInvalidElement)
// is returned to the caller.
package console
