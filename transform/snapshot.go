// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/matsweep/matrix"
)

// grid is a read-only row-major copy of a square input.
type grid struct {
	n    int
	data []float64
}

func (g grid) at(i, j int) float64 { return g.data[i*g.n+j] }

// snapshot validates a and copies it into a grid so kernels can index the
// flat buffer directly.
func snapshot(tag string, a matrix.Matrix) (grid, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return grid{}, fmt.Errorf("%s: %w", tag, err)
	}
	n := a.Rows()
	g := grid{n: n, data: make([]float64, n*n)}

	var i, j int
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.data[i*n+j], err = a.At(i, j); err != nil {
				return grid{}, fmt.Errorf("%s: %w", tag, err)
			}
		}
	}

	return g, nil
}

// emit materialises a result grid as a Dense matrix.
func emit(tag string, g grid) (*matrix.Dense, error) {
	out, err := matrix.NewSquare(g.n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = 0; j < g.n; j++ {
			if err = out.Set(i, j, g.at(i, j)); err != nil {
				return nil, fmt.Errorf("%s: %w", tag, err)
			}
		}
	}

	return out, nil
}
