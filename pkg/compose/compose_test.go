// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package compose_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain/memory"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain/mocks"
	. "gitlab.com/accumulatenetwork/authroute/pkg/compose"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"gitlab.com/accumulatenetwork/authroute/pkg/route"
	"gitlab.com/accumulatenetwork/authroute/pkg/txn"
)

var (
	alice = address.Address{1}
	bob   = address.Address{2}
	carol = address.Address{3}
	msig  = address.Address{10}
	pure  = address.Address{30}

	// System.remark(0x01)
	remark = []byte{0x00, 0x07, 0x04, 0x01}
)

func multisigRoute(signer address.Address, threshold uint16, others ...address.Address) route.Route {
	return route.Route{
		&route.Origin{Account: signer},
		&route.MultisigHop{Multisig: msig, Threshold: threshold, OtherSignatories: others},
	}
}

func proxyRoute(delegate address.Address, proxyType string, delay uint32) route.Route {
	return route.Route{
		&route.Origin{Account: delegate},
		&route.ProxyHop{Real: pure, Delegate: delegate, ProxyType: proxyType, Delay: delay},
	}
}

func TestComposeThreshold1(t *testing.T) {
	// A mock with no expectations fails the test if the chain is queried
	client := mocks.NewClient(t)
	n := chain.Polkadot()
	c := &Composer{Network: n, Client: client}

	env, err := c.Compose(context.Background(), remark, multisigRoute(alice, 1, carol, bob), nil)
	require.NoError(t, err)

	expect, err := n.Encoder().AsMultiThreshold1([]address.Address{bob, carol}, remark)
	require.NoError(t, err)
	require.Equal(t, expect, env.Call)
	require.Equal(t, alice, env.Signer)
	require.Len(t, env.Layers, 1)
	require.False(t, env.Layers[0].FirstApproval)
}

func TestComposeFirstApproval(t *testing.T) {
	n := chain.Polkadot()
	mc := memory.New(n)
	mc.SetWeight(nil, call.Weight{RefTime: 1000, ProofSize: 64})
	c := &Composer{Network: n, Client: mc}

	env, err := c.Compose(context.Background(), remark, multisigRoute(alice, 2, bob, carol), nil)
	require.NoError(t, err)
	require.Nil(t, env.Mismatch)
	require.Len(t, env.Layers, 1)
	require.True(t, env.Layers[0].FirstApproval)
	require.Nil(t, env.Layers[0].Timepoint)

	expect, err := n.Encoder().AsMulti(2, []address.Address{bob, carol}, nil, remark, call.Weight{RefTime: 1000, ProofSize: 64})
	require.NoError(t, err)
	require.Equal(t, expect, env.Call)
}

func TestComposeUsesChainTimepoint(t *testing.T) {
	n := chain.Polkadot()
	mc := memory.New(n)
	mc.SetPending(msig, call.HashOf(remark), &chain.Pending{
		When:      call.Timepoint{Height: 100},
		Deposit:   big.NewInt(1),
		Depositor: bob,
		Approvals: []address.Address{bob},
	})
	c := &Composer{Network: n, Client: mc}

	env, err := c.Compose(context.Background(), remark, multisigRoute(alice, 2, bob, carol), nil)
	require.NoError(t, err)
	require.False(t, env.Layers[0].FirstApproval)
	require.Equal(t, &call.Timepoint{Height: 100}, env.Layers[0].Timepoint)

	expect, err := n.Encoder().AsMulti(2, []address.Address{bob, carol}, &call.Timepoint{Height: 100}, remark, call.Weight{})
	require.NoError(t, err)
	require.Equal(t, expect, env.Call)
}

func TestComposeRace(t *testing.T) {
	n := chain.Polkadot()
	c := &Composer{Network: n, Client: memory.New(n)}

	hash := call.HashOf(remark)
	tracked := &txn.Transaction{
		Address:   msig,
		Type:      txn.TypeMultisig,
		Status:    txn.StatusPending,
		CallHash:  &hash,
		Timepoint: &call.Timepoint{Height: 100},
	}

	_, err := c.Compose(context.Background(), remark, multisigRoute(alice, 2, bob, carol), tracked)
	require.Error(t, err)

	var race *AlreadyExecutedError
	require.ErrorAs(t, err, &race)
	require.Equal(t, msig, race.Multisig)
	require.Equal(t, errors.Conflict, errors.Code(err))
	require.Equal(t, errors.KindRace, errors.KindOf(err))
}

func TestComposeTimepointMismatch(t *testing.T) {
	n := chain.Polkadot()
	mc := memory.New(n)
	mc.SetPending(msig, call.HashOf(remark), &chain.Pending{When: call.Timepoint{Height: 101}, Depositor: bob})
	c := &Composer{Network: n, Client: mc}

	tracked := &txn.Transaction{
		Address:   msig,
		Type:      txn.TypeMultisig,
		Status:    txn.StatusPending,
		Timepoint: &call.Timepoint{Height: 100},
	}

	env, err := c.Compose(context.Background(), remark, multisigRoute(alice, 2, bob, carol), tracked)
	require.NoError(t, err)
	require.NotNil(t, env.Mismatch)
	require.Equal(t, call.Timepoint{Height: 100}, env.Mismatch.Expected)
	require.Equal(t, call.Timepoint{Height: 101}, env.Mismatch.Actual)
	require.Equal(t, errors.KindStaleness, errors.KindOf(env.Mismatch))

	// The chain's timepoint wins
	expect, err := n.Encoder().AsMulti(2, []address.Address{bob, carol}, &call.Timepoint{Height: 101}, remark, call.Weight{})
	require.NoError(t, err)
	require.Equal(t, expect, env.Call)
}

func TestComposeCallHashMismatch(t *testing.T) {
	n := chain.Polkadot()
	c := &Composer{Network: n, Client: mocks.NewClient(t)}

	other := call.HashOf([]byte{1, 2, 3})
	tracked := &txn.Transaction{Address: msig, Type: txn.TypeMultisig, Status: txn.StatusPending, CallHash: &other}

	_, err := c.Compose(context.Background(), remark, multisigRoute(alice, 2, bob), tracked)
	require.ErrorIs(t, err, errors.BadRequest)
}

func TestComposeInvalidRoute(t *testing.T) {
	n := chain.Polkadot()
	c := &Composer{Network: n, Client: mocks.NewClient(t)}

	_, err := c.Compose(context.Background(), remark, proxyRoute(alice, "", 0), nil)
	require.ErrorIs(t, err, errors.BadRequest)
	require.Equal(t, errors.KindMalformed, errors.KindOf(err))
}

func TestComposeProxy(t *testing.T) {
	n := chain.Polkadot()
	client := mocks.NewClient(t)
	client.EXPECT().ProxyRelationships(context.Background(), pure).Return([]*chain.ProxyDefinition{
		{Delegate: bob, ProxyType: "Staking"},
		{Delegate: alice, ProxyType: "Any"},
	}, nil)
	c := &Composer{Network: n, Client: client}

	env, err := c.Compose(context.Background(), remark, proxyRoute(alice, "Any", 0), nil)
	require.NoError(t, err)
	require.Empty(t, env.Announcements)

	expect, err := n.Encoder().Proxy(pure, "Any", remark)
	require.NoError(t, err)
	require.Equal(t, expect, env.Call)
}

func TestComposeProxyNotFound(t *testing.T) {
	n := chain.Polkadot()
	mc := memory.New(n)
	mc.AddProxy(pure, &chain.ProxyDefinition{Delegate: alice, ProxyType: "Any", Delay: 10})
	c := &Composer{Network: n, Client: mc}

	// The delay must match too
	_, err := c.Compose(context.Background(), remark, proxyRoute(alice, "Any", 0), nil)
	var nf *ProxyNotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, errors.KindCapability, errors.KindOf(err))
}

func TestComposeAnnounce(t *testing.T) {
	n := chain.Polkadot()
	mc := memory.New(n)
	mc.AddProxy(pure, &chain.ProxyDefinition{Delegate: alice, ProxyType: "Any", Delay: 10})
	c := &Composer{Network: n, Client: mc}

	env, err := c.Compose(context.Background(), remark, proxyRoute(alice, "Any", 10), nil)
	require.NoError(t, err)
	require.Equal(t, []*Announcement{{Real: pure, Delegate: alice, CallHash: call.HashOf(remark)}}, env.Announcements)

	expect, err := n.Encoder().Announce(pure, call.HashOf(remark))
	require.NoError(t, err)
	require.Equal(t, expect, env.Call)

	n.Announce = false
	_, err = c.Compose(context.Background(), remark, proxyRoute(alice, "Any", 10), nil)
	var ud *UnsupportedDispatchError
	require.ErrorAs(t, err, &ud)
	require.Equal(t, errors.NotAllowed, errors.Code(err))
}

func TestComposeRemoteProxy(t *testing.T) {
	local := &chain.ProxyDefinition{Delegate: alice, ProxyType: "Any"}

	cases := []struct {
		Name     string
		Remote   bool
		IsRemote bool
		Local    bool
		Delay    uint32
		Expect   func(*call.Encoder) ([]byte, error)
		NotFound bool
	}{
		{Name: "local first", Remote: true, Local: true, Expect: func(e *call.Encoder) ([]byte, error) { return e.Proxy(pure, "Any", remark) }},
		{Name: "remote fallback", Remote: true, Expect: func(e *call.Encoder) ([]byte, error) { return e.RemoteProxy(pure, "Any", remark) }},
		{Name: "remote hop", Remote: true, IsRemote: true, Expect: func(e *call.Encoder) ([]byte, error) { return e.RemoteProxy(pure, "Any", remark) }},
		{Name: "remote hop without support", IsRemote: true, NotFound: true},
		{Name: "no support", NotFound: true},
		{Name: "delayed", Remote: true, Delay: 10, NotFound: true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			n := chain.Polkadot()
			n.RemoteProxy = c.Remote
			n.Calls.RemoteProxy = call.Index{Pallet: 42, Call: 0}
			mc := memory.New(n)
			if c.Local {
				mc.AddProxy(pure, local)
			}
			comp := &Composer{Network: n, Client: mc}

			r := proxyRoute(alice, "Any", c.Delay)
			if c.IsRemote {
				r[1].(*route.ProxyHop).IsRemote = true
				r[1].(*route.ProxyHop).Network = "kusama"
			}

			env, err := comp.Compose(context.Background(), remark, r, nil)
			if c.NotFound {
				var nf *ProxyNotFoundError
				require.ErrorAs(t, err, &nf)
				require.ErrorIs(t, err, errors.NotFound)
				return
			}

			require.NoError(t, err)
			require.Empty(t, env.Announcements)
			expect, err := c.Expect(n.Encoder())
			require.NoError(t, err)
			require.Equal(t, expect, env.Call)
		})
	}
}

func TestComposeNested(t *testing.T) {
	n := chain.Polkadot()
	mc := memory.New(n)
	mc.AddProxy(pure, &chain.ProxyDefinition{Delegate: msig, ProxyType: "Any"})
	c := &Composer{Network: n, Client: mc}

	proxied, err := n.Encoder().Proxy(pure, "Any", remark)
	require.NoError(t, err)
	mc.SetPending(msig, call.HashOf(proxied), &chain.Pending{When: call.Timepoint{Height: 7, Index: 2}, Depositor: bob})

	r := route.Route{
		&route.Origin{Account: alice},
		&route.MultisigHop{Multisig: msig, Threshold: 2, OtherSignatories: []address.Address{bob}},
		&route.ProxyHop{Real: pure, Delegate: msig, ProxyType: "Any"},
	}

	tracked := &txn.Transaction{
		Address:  pure,
		Type:     txn.TypeProxy,
		Status:   txn.StatusPending,
		Delegate: &msig,
		Children: []*txn.Transaction{{
			Address:   msig,
			Type:      txn.TypeMultisig,
			Status:    txn.StatusPending,
			Timepoint: &call.Timepoint{Height: 7, Index: 2},
		}},
	}

	env, err := c.Compose(context.Background(), remark, r, tracked)
	require.NoError(t, err)
	require.Nil(t, env.Mismatch)
	require.Len(t, env.Layers, 2)
	require.Equal(t, 2, env.Layers[0].Step)
	require.Equal(t, msig, env.Layers[0].Sender)
	require.Equal(t, 1, env.Layers[1].Step)
	require.Equal(t, alice, env.Layers[1].Sender)
	require.Equal(t, proxied, env.Layers[1].Inner)

	expect, err := n.Encoder().AsMulti(2, []address.Address{bob}, &call.Timepoint{Height: 7, Index: 2}, proxied, call.Weight{})
	require.NoError(t, err)
	require.Equal(t, expect, env.Call)
	require.Equal(t, call.HashOf(expect), env.Hash)
}

func TestComposeProposal(t *testing.T) {
	c := &Composer{Network: chain.Polkadot(), Client: mocks.NewClient(t)}

	env, err := c.Compose(context.Background(), remark, route.Route{&route.ProposerHop{Proposer: carol, Target: msig}}, nil)
	require.NoError(t, err)
	require.True(t, env.Proposal)
	require.Equal(t, remark, env.Call)
	require.Equal(t, carol, env.Signer)
}
