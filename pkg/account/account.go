// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package account models accounts and the relationships through which one
// account can be controlled by others: multisig membership, proxy
// delegation, and off-chain proposers.
package account

import (
	"strings"

	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

// Type is the on-chain type of an account.
type Type int

const (
	// TypePlain is a keyed account.
	TypePlain Type = iota

	// TypeMultisig is a keyless account controlled by a threshold of members.
	TypeMultisig

	// TypePure is a keyless account that can only be controlled through its
	// proxies.
	TypePure
)

func (t Type) String() string {
	switch t {
	case TypePlain:
		return "plain"
	case TypeMultisig:
		return "multisig"
	case TypePure:
		return "pure"
	default:
		return "unknown"
	}
}

func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Type) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "", "plain", "account":
		*t = TypePlain
	case "multisig":
		*t = TypeMultisig
	case "pure":
		*t = TypePure
	default:
		return errors.BadRequest.WithFormat("unknown account type %q", b)
	}
	return nil
}

// Account is an account together with everything that controls it. The
// structure is a tree rooted at the account: members and delegates are
// themselves accounts with their own controllers.
type Account struct {
	Address address.Address `json:"address"`
	Type    Type            `json:"type"`
	Network string          `json:"network,omitempty"`
	Name    string          `json:"name,omitempty"`

	// Threshold and Members are only meaningful for a multisig.
	Threshold uint16    `json:"threshold,omitempty"`
	Members   []*Member `json:"members,omitempty"`

	// Delegatees are the proxies of this account.
	Delegatees []*Delegation `json:"delegatees,omitempty"`

	// Proposers may propose calls for this account off-chain.
	Proposers []*Proposer `json:"proposers,omitempty"`
}

// Member is a member of a multisig.
type Member struct {
	Account *Account `json:"account"`

	// IsSelf is set when the member is one of the caller's own accounts.
	IsSelf bool `json:"isSelf,omitempty"`
}

// Delegation says Delegate may dispatch calls as the owning account, limited
// to ProxyType, after waiting Delay blocks. A zero delay permits immediate
// dispatch. A remote delegation is registered on Network and proven to the
// local chain.
type Delegation struct {
	Delegate  *Account `json:"delegate"`
	ProxyType string   `json:"proxyType"`
	Delay     uint32   `json:"delay,omitempty"`
	Network   string   `json:"network,omitempty"`
	IsRemote  bool     `json:"isRemote,omitempty"`
}

// Proposer may propose calls for an account without being able to dispatch
// them.
type Proposer struct {
	Address address.Address `json:"address"`
	Network string          `json:"network,omitempty"`
}

// Kind is the capability class of an account.
type Kind int

const (
	// KindPlain can sign and has no controllers.
	KindPlain Kind = iota

	// KindMultisig is controlled by its members.
	KindMultisig

	// KindProxiedOrPure is controlled by its delegates, and can also sign
	// unless it is pure.
	KindProxiedOrPure
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindMultisig:
		return "multisig"
	case KindProxiedOrPure:
		return "proxied"
	default:
		return "unknown"
	}
}

// KindOf returns the capability class of the account.
func KindOf(a *Account) Kind {
	switch {
	case a.Type == TypeMultisig:
		return KindMultisig
	case a.Type == TypePure, len(a.Delegatees) > 0:
		return KindProxiedOrPure
	default:
		return KindPlain
	}
}

// DelegationsOf returns the account's delegations.
func DelegationsOf(a *Account) []*Delegation { return a.Delegatees }

// MembersOf returns the members of a multisig, or nil.
func MembersOf(a *Account) []*Account {
	if a.Type != TypeMultisig {
		return nil
	}
	m := make([]*Account, 0, len(a.Members))
	for _, x := range a.Members {
		m = append(m, x.Account)
	}
	return m
}

// MemberAddresses returns the addresses of the members of a multisig.
func MemberAddresses(a *Account) []address.Address {
	m := make([]address.Address, 0, len(a.Members))
	for _, x := range a.Members {
		m = append(m, x.Account.Address)
	}
	return m
}

// Signable returns true if the account holds a key and can sign directly.
func (a *Account) Signable() bool {
	return a.Type == TypePlain
}

// Equal returns true if a and b are the same account.
func (a *Account) Equal(b *Account) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Address == b.Address
}

// Validate checks the structural invariants of the account tree, down to
// maxDepth levels.
func (a *Account) Validate(maxDepth int) error {
	return a.validate(0, maxDepth)
}

func (a *Account) validate(depth, maxDepth int) error {
	if depth > maxDepth {
		return errors.DepthExceeded.WithFormat("account %v is nested more than %d levels deep", a.Address, maxDepth)
	}

	if a.Type == TypeMultisig {
		if len(a.Members) == 0 {
			return errors.BadRequest.WithFormat("multisig %v has no members", a.Address)
		}
		if a.Threshold < 1 || int(a.Threshold) > len(a.Members) {
			return errors.BadRequest.WithFormat("multisig %v: threshold %d is outside 1..%d", a.Address, a.Threshold, len(a.Members))
		}
	} else if len(a.Members) > 0 {
		return errors.BadRequest.WithFormat("%v account %v has members", a.Type, a.Address)
	}

	for _, m := range a.Members {
		if m.Account == nil {
			return errors.BadRequest.WithFormat("multisig %v has a nil member", a.Address)
		}
		err := m.Account.validate(depth+1, maxDepth)
		if err != nil {
			return errors.UnknownError.Wrap(err)
		}
	}

	for _, d := range a.Delegatees {
		if d.Delegate == nil {
			return errors.BadRequest.WithFormat("account %v has a nil delegate", a.Address)
		}
		if d.ProxyType == "" {
			return errors.BadRequest.WithFormat("delegation of %v to %v has no proxy type", a.Address, d.Delegate.Address)
		}
		err := d.Delegate.validate(depth+1, maxDepth)
		if err != nil {
			return errors.UnknownError.Wrap(err)
		}
	}
	return nil
}
