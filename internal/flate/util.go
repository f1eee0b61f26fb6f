// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flate

import "golang.org/x/exp/constraints"

// minInt returns the smaller of a and b, generic over constraints.Integer
// so it reads the same way whether called with byte counts or bit counts.
func minInt[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}
