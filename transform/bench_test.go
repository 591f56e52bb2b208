// SPDX-License-Identifier: MIT
package transform_test

import (
	"testing"

	"github.com/katalvlaran/matsweep/matrix"
	"github.com/katalvlaran/matsweep/transform"
)

// benchInput builds a deterministic 20×20 matrix (the largest accepted side).
func benchInput(b *testing.B) *matrix.Dense {
	b.Helper()
	const n = 20
	m, err := matrix.NewSquare(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, float64((i*7+j*13)%31))
		}
	}

	return m
}

func BenchmarkTwoTier20(b *testing.B) {
	m := benchInput(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := (transform.TwoTier{}).Apply(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTriangle20(b *testing.B) {
	m := benchInput(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := (transform.Triangle{}).Apply(m); err != nil {
			b.Fatal(err)
		}
	}
}
