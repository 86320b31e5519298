// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package memory_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/authroute/internal/config"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
	. "gitlab.com/accumulatenetwork/authroute/pkg/chain/memory"
)

var (
	alice = address.Address{1}
	bob   = address.Address{2}
	msig  = address.Address{10}
	pure  = address.Address{30}
)

func TestLoadStateFile(t *testing.T) {
	hash := call.HashOf([]byte{0x00, 0x07, 0x04, 0x01})
	doc := fmt.Sprintf(`
pending:
  - multisig: "%v"
    call-hash: "%v"
    when: { height: 100, index: 2 }
    deposit: 2015200000
    depositor: "%v"
    approvals: ["%v"]
proxies:
  - real: "%v"
    proxies:
      - { delegate: "%v", proxy-type: Any, delay: 10 }
weight: { ref-time: 1000, proof-size: 200 }
`, msig, hash, alice, alice, pure, bob)

	var s State
	require.NoError(t, config.DecodeFile("state.yaml", []byte(doc), &s))

	c := New(chain.Polkadot())
	c.Load(&s)
	ctx := context.Background()

	p, err := c.MultisigPending(ctx, msig, hash)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, call.Timepoint{Height: 100, Index: 2}, p.When)
	require.Equal(t, "2015200000", p.Deposit.String())
	require.Equal(t, alice, p.Depositor)
	require.True(t, p.Approved(alice))
	require.False(t, p.Approved(bob))

	defs, err := c.ProxyRelationships(ctx, pure)
	require.NoError(t, err)
	require.Equal(t, []*chain.ProxyDefinition{{Delegate: bob, ProxyType: "Any", Delay: 10}}, defs)

	w, err := c.EstimateWeight(ctx, []byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, call.Weight{RefTime: 1000, ProofSize: 200}, w)
}

func TestPendingIsCopied(t *testing.T) {
	c := New(chain.Polkadot())
	hash := call.HashOf([]byte{1})
	p := &chain.Pending{When: call.Timepoint{Height: 5}, Deposit: big.NewInt(1), Depositor: alice, Approvals: []address.Address{alice}}
	c.SetPending(msig, hash, p)

	// Mutating the caller's copy does not change the chain
	p.Approvals = append(p.Approvals, bob)
	got, err := c.MultisigPending(context.Background(), msig, hash)
	require.NoError(t, err)
	require.False(t, got.Approved(bob))

	c.ClearPending(msig, hash)
	got, err = c.MultisigPending(context.Background(), msig, hash)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRemoveProxy(t *testing.T) {
	c := New(chain.Polkadot())
	c.AddProxy(pure, &chain.ProxyDefinition{Delegate: alice, ProxyType: "Any"})
	c.AddProxy(pure, &chain.ProxyDefinition{Delegate: bob, ProxyType: "Staking"})
	c.RemoveProxy(pure, alice)

	defs, err := c.ProxyRelationships(context.Background(), pure)
	require.NoError(t, err)
	require.Equal(t, []*chain.ProxyDefinition{{Delegate: bob, ProxyType: "Staking"}}, defs)
}
