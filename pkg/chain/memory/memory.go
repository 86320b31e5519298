// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package memory implements an in-memory chain, for tests and offline use.
package memory

import (
	"context"
	"math/big"
	"slices"
	"sync"

	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
)

type pendingKey struct {
	multisig address.Address
	hash     call.Hash
}

// Chain is an in-memory chain.Client.
type Chain struct {
	network *chain.Network

	mu      sync.RWMutex
	pending map[pendingKey]*chain.Pending
	proxies map[address.Address][]*chain.ProxyDefinition
	weights map[call.Hash]call.Weight
	weight  call.Weight
}

var _ chain.Client = (*Chain)(nil)

// New returns an empty chain running the given runtime.
func New(network *chain.Network) *Chain {
	c := new(Chain)
	c.network = network
	c.pending = map[pendingKey]*chain.Pending{}
	c.proxies = map[address.Address][]*chain.ProxyDefinition{}
	c.weights = map[call.Hash]call.Weight{}
	return c
}

// Network returns the chain's runtime.
func (c *Chain) Network() *chain.Network { return c.network }

// SetPending opens or replaces an approval round.
func (c *Chain) SetPending(multisig address.Address, hash call.Hash, p *chain.Pending) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[pendingKey{multisig, hash}] = copyPending(p)
}

// ClearPending closes an approval round, as if it was executed or cancelled.
func (c *Chain) ClearPending(multisig address.Address, hash call.Hash) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, pendingKey{multisig, hash})
}

// AddProxy adds a proxy to the account.
func (c *Chain) AddProxy(real address.Address, p *chain.ProxyDefinition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := *p
	c.proxies[real] = append(c.proxies[real], &v)
}

// RemoveProxy removes every proxy of the account with the given delegate.
func (c *Chain) RemoveProxy(real, delegate address.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.proxies[real] = slices.DeleteFunc(c.proxies[real], func(p *chain.ProxyDefinition) bool {
		return p.Delegate == delegate
	})
}

// SetWeight sets the weight reported for a specific call, or for every call
// without a specific weight if call is nil.
func (c *Chain) SetWeight(data []byte, w call.Weight) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if data == nil {
		c.weight = w
	} else {
		c.weights[call.HashOf(data)] = w
	}
}

func (c *Chain) MultisigPending(_ context.Context, multisig address.Address, hash call.Hash) (*chain.Pending, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.pending[pendingKey{multisig, hash}]
	if !ok {
		return nil, nil
	}
	return copyPending(p), nil
}

func (c *Chain) ProxyRelationships(_ context.Context, real address.Address) ([]*chain.ProxyDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var s []*chain.ProxyDefinition
	for _, p := range c.proxies[real] {
		v := *p
		s = append(s, &v)
	}
	return s, nil
}

func (c *Chain) EstimateWeight(_ context.Context, data []byte) (call.Weight, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if w, ok := c.weights[call.HashOf(data)]; ok {
		return w, nil
	}
	return c.weight, nil
}

func (c *Chain) MultisigDeposit(_ context.Context, threshold uint16) (*big.Int, error) {
	return c.network.Deposits.MultisigDeposit(threshold), nil
}

func (c *Chain) ExistentialDeposit(context.Context, address.Address) (*big.Int, error) {
	return c.network.Deposits.ExistentialDeposit(), nil
}

func (c *Chain) AnnouncementDeposit(context.Context) (*big.Int, error) {
	return c.network.Deposits.AnnouncementDeposit(), nil
}

func copyPending(p *chain.Pending) *chain.Pending {
	v := *p
	if p.Deposit != nil {
		v.Deposit = new(big.Int).Set(p.Deposit)
	}
	v.Approvals = slices.Clone(p.Approvals)
	return &v
}
