// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package memory

import (
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
)

// State is a serializable snapshot of chain state.
type State struct {
	Pending []*PendingEntry `json:"pending,omitempty"`
	Proxies []*ProxyEntry   `json:"proxies,omitempty"`
	Weight  *call.Weight    `json:"weight,omitempty"`
}

type PendingEntry struct {
	Multisig address.Address `json:"multisig"`
	CallHash call.Hash       `json:"callHash"`
	chain.Pending
}

type ProxyEntry struct {
	Real    address.Address          `json:"real"`
	Proxies []*chain.ProxyDefinition `json:"proxies"`
}

// Load adds the state to the chain.
func (c *Chain) Load(s *State) {
	for _, p := range s.Pending {
		c.SetPending(p.Multisig, p.CallHash, &p.Pending)
	}
	for _, e := range s.Proxies {
		for _, p := range e.Proxies {
			c.AddProxy(e.Real, p)
		}
	}
	if s.Weight != nil {
		c.SetWeight(nil, *s.Weight)
	}
}
