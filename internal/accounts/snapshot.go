// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package accounts loads account trees from a snapshot file.
package accounts

import (
	"context"
	"os"

	"gitlab.com/accumulatenetwork/authroute/internal/config"
	"gitlab.com/accumulatenetwork/authroute/pkg/account"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

// Entry is the flat description of one account. Members, delegates, and
// proposers refer to other entries by address.
type Entry struct {
	Address   address.Address   `json:"address"`
	Type      account.Type      `json:"type"`
	Network   string            `json:"network,omitempty"`
	Name      string            `json:"name,omitempty"`
	Threshold uint16            `json:"threshold,omitempty"`
	Members   []address.Address `json:"members,omitempty"`
	Delegates []*DelegateEntry  `json:"delegates,omitempty"`
	Proposers []address.Address `json:"proposers,omitempty"`
}

type DelegateEntry struct {
	Address   address.Address `json:"address"`
	ProxyType string          `json:"proxyType"`
	Delay     uint32          `json:"delay,omitempty"`
	Network   string          `json:"network,omitempty"`
	IsRemote  bool            `json:"isRemote,omitempty"`
}

type file struct {
	Accounts []*Entry `json:"accounts"`
}

// Snapshot is a fixed set of accounts.
type Snapshot struct {
	entries map[address.Address]*Entry
}

// Load reads a snapshot file.
func Load(filename string) (*Snapshot, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("read %s: %w", filename, err)
	}

	var f file
	err = config.DecodeFile(filename, b, &f)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("decode %s: %w", filename, err)
	}
	return New(f.Accounts...)
}

// New creates a snapshot from entries.
func New(entries ...*Entry) (*Snapshot, error) {
	s := &Snapshot{entries: make(map[address.Address]*Entry, len(entries))}
	for _, e := range entries {
		if _, ok := s.entries[e.Address]; ok {
			return nil, errors.BadRequest.WithFormat("duplicate account %v", e.Address)
		}
		err := e.shallow().Validate(1)
		if err != nil {
			return nil, errors.UnknownError.Wrap(err)
		}
		s.entries[e.Address] = e
	}
	return s, nil
}

// shallow builds the entry as a single level account, with every reference
// left as a bare address.
func (e *Entry) shallow() *account.Account {
	a := &account.Account{Address: e.Address, Type: e.Type, Threshold: e.Threshold}
	for _, m := range e.Members {
		a.Members = append(a.Members, &account.Member{Account: &account.Account{Address: m}})
	}
	for _, d := range e.Delegates {
		a.Delegatees = append(a.Delegatees, &account.Delegation{
			Delegate:  &account.Account{Address: d.Address},
			ProxyType: d.ProxyType,
		})
	}
	return a
}

// Account resolves the account tree rooted at the address. Addresses with no
// entry are plain accounts. Entries that reference each other share the same
// [account.Account], so the result may contain cycles.
func (s *Snapshot) Account(_ context.Context, network string, addr address.Address) (*account.Account, error) {
	e, ok := s.entries[addr]
	if !ok {
		return nil, errors.NotFound.WithFormat("account %v not found", addr)
	}
	if network != "" && e.Network != "" && e.Network != network {
		return nil, errors.NotFound.WithFormat("account %v belongs to %s, not %s", addr, e.Network, network)
	}
	return s.resolve(addr, map[address.Address]*account.Account{}), nil
}

func (s *Snapshot) resolve(addr address.Address, seen map[address.Address]*account.Account) *account.Account {
	if a, ok := seen[addr]; ok {
		return a
	}

	a := &account.Account{Address: addr}
	seen[addr] = a
	e, ok := s.entries[addr]
	if !ok {
		return a
	}

	a.Type = e.Type
	a.Network = e.Network
	a.Name = e.Name
	a.Threshold = e.Threshold
	for _, m := range e.Members {
		a.Members = append(a.Members, &account.Member{Account: s.resolve(m, seen)})
	}
	for _, d := range e.Delegates {
		a.Delegatees = append(a.Delegatees, &account.Delegation{
			Delegate:  s.resolve(d.Address, seen),
			ProxyType: d.ProxyType,
			Delay:     d.Delay,
			Network:   d.Network,
			IsRemote:  d.IsRemote,
		})
	}
	for _, p := range e.Proposers {
		a.Proposers = append(a.Proposers, &account.Proposer{Address: p, Network: e.Network})
	}
	return a
}

// Names returns the names of the accounts in the snapshot.
func (s *Snapshot) Names() []account.Identity {
	var ids []account.Identity
	for _, e := range s.entries {
		if e.Name != "" {
			ids = append(ids, account.Identity{Address: e.Address, Name: e.Name})
		}
	}
	return ids
}
