// SPDX-License-Identifier: MIT

// Package matrix - whole-matrix extrema.
//
// Purpose:
//   - Locate the maximum and the second-distinct maximum in one row-major pass.
//   - Keep the fast path on *Dense (flat slice) and a fallback through At for
//     any other Matrix implementation; both visit cells in the same order.

package matrix

// Max returns the largest value in m.
//
// Errors: ErrNilMatrix when m is nil.
// Complexity: O(r*c).
func Max(m Matrix) (float64, error) {
	best, _, _, err := extrema(m)

	return best, err
}

// SecondDistinctMax returns the largest value strictly smaller than Max(m).
// ok is false when every cell equals the maximum (no distinct runner-up).
//
// MAIN DESCRIPTION:
//   - Single pass keeping (max, second). A new maximum demotes the previous
//     one to second; values equal to the current maximum are ignored.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func SecondDistinctMax(m Matrix) (second float64, ok bool, err error) {
	_, second, ok, err = extrema(m)

	return second, ok, err
}

// Extrema returns both Max and SecondDistinctMax from a single scan.
func Extrema(m Matrix) (maxV, second float64, hasSecond bool, err error) {
	return extrema(m)
}

// extrema drives the shared scan.
func extrema(m Matrix) (maxV, second float64, hasSecond bool, err error) {
	if err = ValidateNotNil(m); err != nil {
		return 0, 0, false, err
	}

	var t tracker
	if d, isDense := m.(*Dense); isDense {
		// Fast path: flat buffer, same row-major order as the fallback.
		for _, v := range d.data {
			t.observe(v)
		}

		return t.max, t.second, t.hasSecond, nil
	}

	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, 0, false, err
			}
			t.observe(v)
		}
	}

	return t.max, t.second, t.hasSecond, nil
}

// tracker keeps the running maximum and the best value strictly below it.
type tracker struct {
	seen      bool
	hasSecond bool
	max       float64
	second    float64
}

func (t *tracker) observe(v float64) {
	switch {
	case !t.seen:
		t.max, t.seen = v, true
	case v > t.max:
		t.second, t.hasSecond = t.max, true
		t.max = v
	case v < t.max && (!t.hasSecond || v > t.second):
		t.second, t.hasSecond = v, true
	}
}
