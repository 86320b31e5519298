// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package account

import (
	"fmt"

	"gitlab.com/accumulatenetwork/authroute/pkg/address"
)

// Identity is what the caller knows about an address.
type Identity struct {
	Address address.Address `json:"address"`
	Name    string          `json:"name,omitempty"`

	// Local is set if the caller holds the key for the address.
	Local bool `json:"local,omitempty"`
}

// Identities is a read-only snapshot of identities. The zero value and nil
// are empty snapshots.
type Identities struct {
	byAddr map[address.Address]Identity
}

// NewIdentities builds a snapshot. Later entries for the same address
// override earlier ones.
func NewIdentities(entries ...Identity) *Identities {
	s := &Identities{byAddr: make(map[address.Address]Identity, len(entries))}
	for _, e := range entries {
		s.byAddr[e.Address] = e
	}
	return s
}

// IsLocal returns true if the caller can sign for the address.
func (s *Identities) IsLocal(a address.Address) bool {
	if s == nil {
		return false
	}
	return s.byAddr[a].Local
}

// Name returns the name of the address, or "".
func (s *Identities) Name(a address.Address) string {
	if s == nil {
		return ""
	}
	return s.byAddr[a].Name
}

// Len returns the number of identities.
func (s *Identities) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byAddr)
}

// Diagnostic is a non-fatal problem found while traversing an account tree.
type Diagnostic struct {
	Address address.Address `json:"address"`
	Depth   int             `json:"depth"`
	Message string          `json:"message"`
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%v (depth %d): %s", d.Address, d.Depth, d.Message)
}
