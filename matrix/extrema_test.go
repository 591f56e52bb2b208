// SPDX-License-Identifier: MIT
package matrix_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/matsweep/matrix"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// hide wraps any Matrix to hide its concrete type and force the At() fallback.
type hide struct{ matrix.Matrix }

func TestExtremaTable(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]float64
		wantMax   float64
		wantSec   float64
		hasSecond bool
	}{
		{"single", [][]float64{{7}}, 7, 0, false},
		{"all equal", [][]float64{{2, 2}, {2, 2}}, 2, 0, false},
		{"duplicate max", [][]float64{{1, 5}, {3, 5}}, 5, 3, true},
		{"max first", [][]float64{{9, 1}, {4, 2}}, 9, 4, true},
		{"negatives", [][]float64{{-1, -5}, {-3, -1}}, -1, -3, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDenseFrom(tc.rows)
			require.NoError(t, err)

			for _, in := range []matrix.Matrix{m, hide{m}} {
				maxV, sec, ok, err := matrix.Extrema(in)
				require.NoError(t, err)
				require.Equal(t, tc.wantMax, maxV)
				require.Equal(t, tc.hasSecond, ok)
				if tc.hasSecond {
					require.Equal(t, tc.wantSec, sec)
				}
			}
		})
	}
}

func TestExtremaNil(t *testing.T) {
	_, err := matrix.Max(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = matrix.SecondDistinctMax(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestExtremaMatchesSort compares the single-pass scan with a sort-based oracle.
func TestExtremaMatchesSort(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		vals := rapid.SliceOfN(rapid.IntRange(-5, 5), n*n, n*n).Draw(t, "vals")

		m, err := matrix.NewSquare(n)
		if err != nil {
			t.Fatalf("NewSquare: %v", err)
		}
		sorted := make([]float64, 0, n*n)
		for k, v := range vals {
			_ = m.Set(k/n, k%n, float64(v))
			sorted = append(sorted, float64(v))
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

		maxV, sec, ok, err := matrix.Extrema(m)
		if err != nil {
			t.Fatalf("Extrema: %v", err)
		}
		if maxV != sorted[0] {
			t.Fatalf("max = %v, want %v", maxV, sorted[0])
		}
		wantOK := false
		var want float64
		for _, v := range sorted {
			if v < sorted[0] {
				want, wantOK = v, true
				break
			}
		}
		if ok != wantOK || (ok && sec != want) {
			t.Fatalf("second = (%v,%v), want (%v,%v)", sec, ok, want, wantOK)
		}
	})
}
