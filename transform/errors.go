// SPDX-License-Identifier: MIT

package transform

import "errors"

// ErrUnknownPolicy is returned by ParseKind and New for an unrecognised policy.
var ErrUnknownPolicy = errors.New("transform: unknown policy")
