// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package deposit_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain/memory"
	"gitlab.com/accumulatenetwork/authroute/pkg/compose"
	. "gitlab.com/accumulatenetwork/authroute/pkg/deposit"
	"gitlab.com/accumulatenetwork/authroute/pkg/route"
)

var (
	alice = address.Address{1}
	bob   = address.Address{2}
	carol = address.Address{3}
	msig  = address.Address{10}
	inner = address.Address{11}
	pure  = address.Address{30}

	remark = []byte{0x00, 0x07, 0x04, 0x01}
)

func setup() (*memory.Chain, *compose.Composer, *Accountant) {
	n := chain.Polkadot()
	mc := memory.New(n)
	return mc, &compose.Composer{Network: n, Client: mc}, &Accountant{Client: mc}
}

func assess(t *testing.T, c *compose.Composer, a *Accountant, r route.Route) *Ledger {
	t.Helper()
	env, err := c.Compose(context.Background(), remark, r, nil)
	require.NoError(t, err)
	l, err := a.Assess(context.Background(), env)
	require.NoError(t, err)
	return l
}

func multisigRoute(threshold uint16) route.Route {
	return route.Route{
		&route.Origin{Account: alice},
		&route.MultisigHop{Multisig: msig, Threshold: threshold, OtherSignatories: []address.Address{bob, carol}},
	}
}

func TestFirstApprovalReserves(t *testing.T) {
	_, c, a := setup()
	l := assess(t, c, a, multisigRoute(2))

	// 2_008_800_000 + 2 * 3_200_000
	require.Equal(t, "2015200000", l.Reserve[alice].String())
	require.Empty(t, l.Unreserve)
	require.Equal(t, []address.Address{alice}, l.Reserving())
	require.Equal(t, "10000000000", l.Existential[alice].String())

	require.True(t, l.Sufficient(alice, big.NewInt(12_015_200_000)))
	require.False(t, l.Sufficient(alice, big.NewInt(12_015_199_999)))
	require.True(t, l.Sufficient(bob, big.NewInt(0)))
}

func TestFinalApprovalUnreserves(t *testing.T) {
	mc, c, a := setup()
	mc.SetPending(msig, call.HashOf(remark), &chain.Pending{
		When:      call.Timepoint{Height: 100},
		Deposit:   big.NewInt(5),
		Depositor: bob,
		Approvals: []address.Address{bob},
	})

	l := assess(t, c, a, multisigRoute(2))
	require.Empty(t, l.Reserve)
	require.Equal(t, "5", l.Unreserve[bob].String())
}

func TestIntermediateApproval(t *testing.T) {
	mc, c, a := setup()
	mc.SetPending(msig, call.HashOf(remark), &chain.Pending{
		When:      call.Timepoint{Height: 100},
		Deposit:   big.NewInt(5),
		Depositor: bob,
		Approvals: []address.Address{bob},
	})

	l := assess(t, c, a, multisigRoute(3))
	require.Empty(t, l.Reserve)
	require.Empty(t, l.Unreserve)
}

func TestNestedReservesAsInnerSender(t *testing.T) {
	_, c, a := setup()
	r := route.Route{
		&route.Origin{Account: alice},
		&route.MultisigHop{Multisig: inner, Threshold: 1, OtherSignatories: []address.Address{bob}},
		&route.MultisigHop{Multisig: msig, Threshold: 2, OtherSignatories: []address.Address{carol}},
	}

	l := assess(t, c, a, r)
	require.Equal(t, []address.Address{inner}, l.Reserving())
	require.Equal(t, "2015200000", l.Reserve[inner].String())
}

func TestDelayedProxy(t *testing.T) {
	mc, c, a := setup()
	mc.AddProxy(bob, &chain.ProxyDefinition{Delegate: alice, ProxyType: "Any", Delay: 5})
	mc.AddProxy(pure, &chain.ProxyDefinition{Delegate: bob, ProxyType: "Any", Delay: 10})

	r := route.Route{
		&route.Origin{Account: alice},
		&route.ProxyHop{Real: bob, Delegate: alice, ProxyType: "Any", Delay: 5},
		&route.ProxyHop{Real: pure, Delegate: bob, ProxyType: "Any", Delay: 10},
	}

	l := assess(t, c, a, r)
	require.Equal(t, map[address.Address]uint32{bob: 5, pure: 10}, l.Delay)

	// Only the outer announcement executes now: 2_000_800_000 + 6_600_000
	require.Equal(t, []address.Address{alice}, l.Reserving())
	require.Equal(t, "2007400000", l.Reserve[alice].String())
}

func TestAssessIsRepeatable(t *testing.T) {
	mc, c, a := setup()
	mc.AddProxy(pure, &chain.ProxyDefinition{Delegate: msig, ProxyType: "Any", Delay: 10})

	r := route.Route{
		&route.Origin{Account: alice},
		&route.MultisigHop{Multisig: msig, Threshold: 2, OtherSignatories: []address.Address{bob}},
		&route.ProxyHop{Real: pure, Delegate: msig, ProxyType: "Any", Delay: 10},
	}

	env, err := c.Compose(context.Background(), remark, r, nil)
	require.NoError(t, err)

	l1, err := a.Assess(context.Background(), env)
	require.NoError(t, err)
	l2, err := a.Assess(context.Background(), env)
	require.NoError(t, err)
	require.True(t, l1.Equal(l2))
	require.Equal(t, uint32(10), l1.Delay[pure])
}

func TestProposalHasNoDeposits(t *testing.T) {
	_, c, a := setup()
	l := assess(t, c, a, route.Route{&route.ProposerHop{Proposer: carol, Target: msig}})
	require.Empty(t, l.Reserve)
	require.Empty(t, l.Delay)
}
