// SPDX-License-Identifier: MIT
package console_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/matsweep/console"
	"github.com/katalvlaran/matsweep/matrix"
	"github.com/stretchr/testify/require"
)

func TestPrintMatrixPrecision(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2.346}, {-0.5, 10}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, console.NewPrinter(&buf, 2).PrintMatrix("Matrix A:", m))
	require.Equal(t, "Matrix A:\n1.00 2.35\n-0.50 10.00\n", buf.String())

	buf.Reset()
	require.NoError(t, console.NewPrinter(&buf, 0).PrintMatrix("", m))
	require.Equal(t, "1 2\n-0 10\n", buf.String())

	buf.Reset()
	require.NoError(t, console.NewPrinter(&buf, -1).PrintMatrix("", m))
	require.Equal(t, "1 2\n-0 10\n", buf.String())
}

func TestPrintMatrixNil(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, console.NewPrinter(&buf, 2).PrintMatrix("x", nil), matrix.ErrNilMatrix)
	require.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintMatrixWriteError(t *testing.T) {
	m, err := matrix.NewSquare(1)
	require.NoError(t, err)
	require.Error(t, console.NewPrinter(failingWriter{}, 2).PrintMatrix("", m))
}
