// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chain

import (
	"math/big"

	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

// Network describes a chain runtime.
type Network struct {
	ID         string `json:"id"`
	SS58Prefix uint16 `json:"ss58Prefix"`
	Endpoint   string `json:"endpoint,omitempty"`

	Calls call.Indices `json:"calls"`

	// ProxyTypes are the names of the runtime's ProxyType variants, by
	// index.
	ProxyTypes []string `json:"proxyTypes"`

	// RemoteProxy is set if the runtime accepts proxies registered on
	// another chain with a proof.
	RemoteProxy bool `json:"remoteProxy,omitempty"`

	// Announce is set if the runtime supports delayed proxies.
	Announce bool `json:"announce"`

	Deposits Deposits `json:"deposits"`
}

// Deposits are the deposit constants of a runtime.
type Deposits struct {
	Existential        *big.Int `json:"existential"`
	MultisigBase       *big.Int `json:"multisigBase"`
	MultisigFactor     *big.Int `json:"multisigFactor"`
	AnnouncementBase   *big.Int `json:"announcementBase"`
	AnnouncementFactor *big.Int `json:"announcementFactor"`
}

// Encoder returns a call encoder for the runtime.
func (n *Network) Encoder() *call.Encoder {
	e := new(call.Encoder)
	e.Indices = n.Calls
	e.ProxyTypes = make(map[string]uint8, len(n.ProxyTypes))
	for i, name := range n.ProxyTypes {
		if name != "" {
			e.ProxyTypes[name] = uint8(i)
		}
	}
	return e
}

// ProxyTypeName returns the name of a ProxyType variant.
func (n *Network) ProxyTypeName(index uint8) (string, error) {
	if int(index) >= len(n.ProxyTypes) || n.ProxyTypes[index] == "" {
		return "", errors.EncodingError.WithFormat("%s: unknown proxy type %d", n.ID, index)
	}
	return n.ProxyTypes[index], nil
}

// MultisigDeposit computes base + factor * threshold.
func (d *Deposits) MultisigDeposit(threshold uint16) *big.Int {
	v := new(big.Int).Mul(orZero(d.MultisigFactor), big.NewInt(int64(threshold)))
	return v.Add(v, orZero(d.MultisigBase))
}

// AnnouncementDeposit computes base + factor.
func (d *Deposits) AnnouncementDeposit() *big.Int {
	return new(big.Int).Add(orZero(d.AnnouncementBase), orZero(d.AnnouncementFactor))
}

// ExistentialDeposit returns the existential deposit.
func (d *Deposits) ExistentialDeposit() *big.Int {
	return new(big.Int).Set(orZero(d.Existential))
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

// Polkadot returns the Polkadot relay chain runtime.
func Polkadot() *Network {
	return &Network{
		ID:         "polkadot",
		SS58Prefix: 0,
		Endpoint:   "wss://rpc.polkadot.io",
		Calls: call.Indices{
			AsMultiThreshold1: call.Index{Pallet: 30, Call: 0},
			AsMulti:           call.Index{Pallet: 30, Call: 1},
			Proxy:             call.Index{Pallet: 29, Call: 0},
			Announce:          call.Index{Pallet: 29, Call: 6},
		},
		ProxyTypes: []string{"Any", "NonTransfer", "Governance", "Staking", "", "", "CancelProxy", "Auction", "NominationPools"},
		Announce:   true,
		Deposits: Deposits{
			Existential:        big.NewInt(10_000_000_000),
			MultisigBase:       big.NewInt(2_008_800_000),
			MultisigFactor:     big.NewInt(3_200_000),
			AnnouncementBase:   big.NewInt(2_000_800_000),
			AnnouncementFactor: big.NewInt(6_600_000),
		},
	}
}

// Kusama returns the Kusama relay chain runtime.
func Kusama() *Network {
	n := Polkadot()
	n.ID = "kusama"
	n.SS58Prefix = 2
	n.Endpoint = "wss://kusama-rpc.polkadot.io"
	n.Calls = call.Indices{
		AsMultiThreshold1: call.Index{Pallet: 31, Call: 0},
		AsMulti:           call.Index{Pallet: 31, Call: 1},
		Proxy:             call.Index{Pallet: 30, Call: 0},
		Announce:          call.Index{Pallet: 30, Call: 6},
	}
	n.ProxyTypes = []string{"Any", "NonTransfer", "Governance", "Staking", "", "CancelProxy", "Auction", "Society", "NominationPools", "Spokesperson", "ParaRegistration"}
	n.Deposits = Deposits{
		Existential:        big.NewInt(333_333_333),
		MultisigBase:       big.NewInt(66_959_996_400),
		MultisigFactor:     big.NewInt(106_665_600),
		AnnouncementBase:   big.NewInt(66_693_332_400),
		AnnouncementFactor: big.NewInt(219_997_800),
	}
	return n
}
