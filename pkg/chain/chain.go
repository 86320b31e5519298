// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package chain defines the queries the authorization engine makes against a
// chain, and describes the runtime of each supported network.
package chain

import (
	"context"
	"math/big"

	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
)

//go:generate go run github.com/vektra/mockery/v2 --name Client --output mocks --outpkg mocks --with-expecter

// Client queries live chain state. Implementations must be safe for
// concurrent use.
type Client interface {
	// MultisigPending returns the open approval round of the multisig for
	// the call hash, or nil if there is none.
	MultisigPending(ctx context.Context, multisig address.Address, hash call.Hash) (*Pending, error)

	// ProxyRelationships returns the proxies of the account.
	ProxyRelationships(ctx context.Context, real address.Address) ([]*ProxyDefinition, error)

	// EstimateWeight estimates the dispatch weight of an encoded call.
	EstimateWeight(ctx context.Context, call []byte) (call.Weight, error)

	// MultisigDeposit returns the deposit reserved when opening an approval
	// round with the given threshold.
	MultisigDeposit(ctx context.Context, threshold uint16) (*big.Int, error)

	// ExistentialDeposit returns the minimum balance of the account.
	ExistentialDeposit(ctx context.Context, account address.Address) (*big.Int, error)

	// AnnouncementDeposit returns the deposit reserved for one new proxy
	// announcement.
	AnnouncementDeposit(ctx context.Context) (*big.Int, error)
}

// Pending is an open multisig approval round.
type Pending struct {
	When      call.Timepoint    `json:"when"`
	Deposit   *big.Int          `json:"deposit"`
	Depositor address.Address   `json:"depositor"`
	Approvals []address.Address `json:"approvals"`
}

// Approved returns true if the account has already approved.
func (p *Pending) Approved(a address.Address) bool {
	return address.Contains(p.Approvals, a)
}

// ProxyDefinition is a proxy of an account, as recorded on chain.
type ProxyDefinition struct {
	Delegate  address.Address `json:"delegate"`
	ProxyType string          `json:"proxyType"`
	Delay     uint32          `json:"delay"`
}
