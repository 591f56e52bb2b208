// SPDX-License-Identifier: MIT

package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/matsweep/matrix"
)

// Printer writes matrices as rows of space-separated fixed-point values.
type Printer struct {
	w         io.Writer
	precision int
}

// NewPrinter returns a Printer using precision decimals; 0 rounds to integers.
// Negative precision is treated as 0.
func NewPrinter(w io.Writer, precision int) *Printer {
	if precision < 0 {
		precision = 0
	}

	return &Printer{w: w, precision: precision}
}

// Format renders a single value with the printer's precision.
func (p *Printer) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', p.precision, 64)
}

// PrintMatrix writes an optional label line followed by one line per row.
// The whole block is assembled first, so a failing matrix read never leaves
// half a row on the output.
func (p *Printer) PrintMatrix(label string, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}

	var sb strings.Builder
	if label != "" {
		sb.WriteString(label)
		sb.WriteByte('\n')
	}
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(p.Format(v))
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(p.w, sb.String()); err != nil {
		return fmt.Errorf("console: write matrix: %w", err)
	}

	return nil
}
