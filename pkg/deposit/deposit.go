// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package deposit works out which balances a composed call reserves and
// releases when it executes.
package deposit

import (
	"context"
	"math/big"

	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
	"gitlab.com/accumulatenetwork/authroute/pkg/compose"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"gitlab.com/accumulatenetwork/authroute/pkg/route"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

// Ledger is the balance impact of executing a composed call.
type Ledger struct {
	// Reserve is the amount each account must have reserved.
	Reserve map[address.Address]*big.Int `json:"reserve"`

	// Unreserve is the amount released to each account.
	Unreserve map[address.Address]*big.Int `json:"unreserve"`

	// Delay is the longest announcement delay of each proxied account.
	Delay map[address.Address]uint32 `json:"delay"`

	// Existential is the existential deposit of each reserving account.
	Existential map[address.Address]*big.Int `json:"existential"`
}

func newLedger() *Ledger {
	return &Ledger{
		Reserve:     map[address.Address]*big.Int{},
		Unreserve:   map[address.Address]*big.Int{},
		Delay:       map[address.Address]uint32{},
		Existential: map[address.Address]*big.Int{},
	}
}

// Reserving returns the accounts that must reserve funds, sorted.
func (l *Ledger) Reserving() []address.Address {
	a := maps.Keys(l.Reserve)
	address.Sort(a)
	return a
}

// Sufficient returns true if an account with the given free balance can
// cover its reservation and still keep its existential deposit.
func (l *Ledger) Sufficient(a address.Address, free *big.Int) bool {
	need := new(big.Int)
	if v, ok := l.Reserve[a]; ok {
		need.Add(need, v)
	}
	if v, ok := l.Existential[a]; ok {
		need.Add(need, v)
	}
	return free.Cmp(need) >= 0
}

func add(m map[address.Address]*big.Int, a address.Address, v *big.Int) {
	if v == nil {
		return
	}
	if x, ok := m[a]; ok {
		x.Add(x, v)
		return
	}
	m[a] = new(big.Int).Set(v)
}

// Accountant assesses deposits.
type Accountant struct {
	Client chain.Client
}

// Assess walks the envelope from the outermost layer inward, following the
// part of the call that executes when the signer submits it. A multisig layer
// executes its inner call only on the final approval; a delayed proxy only
// announces. Assess reads chain state and never modifies it.
func (a *Accountant) Assess(ctx context.Context, env *compose.Envelope) (*Ledger, error) {
	if env == nil {
		return nil, errors.BadRequest.With("missing envelope")
	}

	l := newLedger()
	r := env.Route
	if env.Proposal {
		return l, nil
	}

	for _, s := range r {
		if hop, ok := s.(*route.ProxyHop); ok && hop.Delay > 0 {
			if hop.Delay > l.Delay[hop.Real] {
				l.Delay[hop.Real] = hop.Delay
			}
		}
	}

	layers := make([]*compose.Layer, len(r))
	for _, layer := range env.Layers {
		if layer.Step <= 0 || layer.Step >= len(r) {
			return nil, errors.BadRequest.WithFormat("layer refers to step %d of a %d step route", layer.Step, len(r))
		}
		layers[layer.Step] = layer
	}

	pending, err := a.loadPending(ctx, r, layers)
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}

walk:
	for i := 1; i < len(r); i++ {
		layer := layers[i]
		if layer == nil {
			return nil, errors.BadRequest.WithFormat("missing layer for step %d", i)
		}

		switch hop := r[i].(type) {
		case *route.MultisigHop:
			if hop.Threshold == 1 {
				continue
			}

			p := pending[i]
			if p == nil {
				dep, err := a.Client.MultisigDeposit(ctx, hop.Threshold)
				if err != nil {
					return nil, errors.UnknownError.WithFormat("load multisig deposit: %w", err)
				}
				add(l.Reserve, layer.Sender, dep)
				break walk
			}

			approvals := len(p.Approvals)
			if !p.Approved(layer.Sender) {
				approvals++
			}
			if approvals < int(hop.Threshold) {
				break walk
			}
			add(l.Unreserve, p.Depositor, p.Deposit)

		case *route.ProxyHop:
			if hop.Delay == 0 {
				continue
			}
			dep, err := a.Client.AnnouncementDeposit(ctx)
			if err != nil {
				return nil, errors.UnknownError.WithFormat("load announcement deposit: %w", err)
			}
			add(l.Reserve, hop.Delegate, dep)
			break walk
		}
	}

	err = a.loadExistential(ctx, l)
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}
	return l, nil
}

func (a *Accountant) loadPending(ctx context.Context, r route.Route, layers []*compose.Layer) ([]*chain.Pending, error) {
	pending := make([]*chain.Pending, len(r))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range r {
		hop, ok := s.(*route.MultisigHop)
		if !ok || hop.Threshold == 1 || layers[i] == nil {
			continue
		}
		hash := layers[i].InnerHash
		g.Go(func() error {
			p, err := a.Client.MultisigPending(ctx, hop.Multisig, hash)
			if err != nil {
				return errors.UnknownError.WithFormat("load pending approvals of %v: %w", hop.Multisig, err)
			}
			pending[i] = p
			return nil
		})
	}
	return pending, g.Wait()
}

func (a *Accountant) loadExistential(ctx context.Context, l *Ledger) error {
	accounts := l.Reserving()
	values := make([]*big.Int, len(accounts))
	g, ctx := errgroup.WithContext(ctx)
	for i, acct := range accounts {
		g.Go(func() error {
			v, err := a.Client.ExistentialDeposit(ctx, acct)
			if err != nil {
				return errors.UnknownError.WithFormat("load existential deposit of %v: %w", acct, err)
			}
			values[i] = v
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		return err
	}
	for i, acct := range accounts {
		if values[i] != nil {
			l.Existential[acct] = new(big.Int).Set(values[i])
		}
	}
	return nil
}

// Equal returns true if the ledgers are the same.
func (l *Ledger) Equal(m *Ledger) bool {
	eq := func(a, b *big.Int) bool { return a.Cmp(b) == 0 }
	return maps.EqualFunc(l.Reserve, m.Reserve, eq) &&
		maps.EqualFunc(l.Unreserve, m.Unreserve, eq) &&
		maps.Equal(l.Delay, m.Delay) &&
		maps.EqualFunc(l.Existential, m.Existential, eq)
}
