// SPDX-License-Identifier: MIT

package console

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/matsweep/matrix"
)

// Scanner reads whitespace-separated tokens from an input stream.
type Scanner struct {
	sc *bufio.Scanner
}

// NewScanner wraps r. Tokens are split on any Unicode whitespace.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Scanner{sc: sc}
}

// next returns the following token, io.EOF at end of input, or the read error.
func (s *Scanner) next() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// ReadDimension reads one integer token and checks 1 ≤ n ≤ maxN.
//
// Errors: *DimensionError (matches ErrInvalidDimension) for a missing,
// non-integer or out-of-range token.
func (s *Scanner) ReadDimension(maxN int) (int, error) {
	tok, err := s.next()
	if err != nil {
		return 0, &DimensionError{Max: maxN, Cause: err}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &DimensionError{Token: tok, Max: maxN, Cause: err}
	}
	if n < 1 || n > maxN {
		return 0, &DimensionError{Token: tok, Max: maxN}
	}

	return n, nil
}

// ReadMatrix reads n×n values in row-major order into a new matrix.
// onRow, when non-nil, is called with the zero-based index of each completed row.
//
// Errors: *ElementError (matches ErrInvalidElement) on the first missing,
// non-numeric or non-finite token; matrix.ErrInvalidDimensions when n < 1.
func (s *Scanner) ReadMatrix(n int, onRow func(row int)) (*matrix.Dense, error) {
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err := s.readValue(i, j)
			if err != nil {
				return nil, err
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
		if onRow != nil {
			onRow(i)
		}
	}

	return m, nil
}

// readValue parses the next token as a finite float64.
func (s *Scanner) readValue(row, col int) (float64, error) {
	tok, err := s.next()
	if err != nil {
		return 0, &ElementError{Row: row, Col: col, Cause: err}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ElementError{Row: row, Col: col, Token: tok, Cause: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ElementError{Row: row, Col: col, Token: tok, Cause: matrix.ErrNaNInf}
	}

	return v, nil
}
