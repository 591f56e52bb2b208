// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matsweep/matrix"
)

// Kind names a transform policy.
type Kind int

const (
	// GlobalTwoTier replaces the lower-right triangle with the global max / second max.
	GlobalTwoTier Kind = iota + 1
	// LocalTriangle takes the maximum over an expanding right-opening triangle.
	LocalTriangle
)

// Canonical policy names, as accepted by ParseKind and written by Kind.String.
const (
	NameGlobalTwoTier = "global-two-tier"
	NameLocalTriangle = "local-triangle"
)

// String returns the canonical policy name.
func (k Kind) String() string {
	switch k {
	case GlobalTwoTier:
		return NameGlobalTwoTier
	case LocalTriangle:
		return NameLocalTriangle
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a policy name to its Kind. Matching is case-insensitive;
// the short aliases "a" and "b" are accepted as well.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case NameGlobalTwoTier, "a", "global":
		return GlobalTwoTier, nil
	case NameLocalTriangle, "b", "local":
		return LocalTriangle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Policy computes a derived matrix from a square input.
type Policy interface {
	// Kind identifies the policy.
	Kind() Kind

	// Apply returns a new matrix; a is left untouched.
	// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
	Apply(a matrix.Matrix) (*matrix.Dense, error)

	// Precision is the number of decimals the policy's results are printed with.
	Precision() int
}

// New returns the Policy implementation for k.
func New(k Kind) (Policy, error) {
	switch k {
	case GlobalTwoTier:
		return TwoTier{}, nil
	case LocalTriangle:
		return Triangle{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, k)
	}
}

// Apply is a convenience wrapper: New(k) followed by Policy.Apply(a).
func Apply(k Kind, a matrix.Matrix) (*matrix.Dense, error) {
	p, err := New(k)
	if err != nil {
		return nil, err
	}

	return p.Apply(a)
}
