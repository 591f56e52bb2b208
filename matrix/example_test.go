// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matsweep/matrix"
)

// ExampleExtrema shows the maximum and the second-distinct maximum of a
// matrix whose maximum appears twice.
func ExampleExtrema() {
	m, _ := matrix.NewDenseFrom([][]float64{
		{1, 5},
		{3, 5},
	})

	maxV, second, ok, _ := matrix.Extrema(m)
	fmt.Println(maxV, second, ok)
	fmt.Print(m)

	// Output:
	// 5 3 true
	// [1, 5]
	// [3, 5]
}
