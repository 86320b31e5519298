// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package address

import "slices"

// Sort sorts addresses in place.
func Sort(addrs []Address) {
	slices.SortFunc(addrs, Address.Compare)
}

// Sorted returns a sorted copy with duplicates removed.
func Sorted(addrs []Address) []Address {
	s := slices.Clone(addrs)
	Sort(s)
	return slices.Compact(s)
}

// Contains returns true if addrs contains a.
func Contains(addrs []Address, a Address) bool {
	return slices.Contains(addrs, a)
}

// Without returns a copy of addrs with every occurrence of a removed.
func Without(addrs []Address, a Address) []Address {
	s := make([]Address, 0, len(addrs))
	for _, b := range addrs {
		if b != a {
			s = append(s, b)
		}
	}
	return s
}
