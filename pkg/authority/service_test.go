// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package authority_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/authroute/internal/logging"
	"gitlab.com/accumulatenetwork/authroute/pkg/account"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	. "gitlab.com/accumulatenetwork/authroute/pkg/authority"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain/memory"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"gitlab.com/accumulatenetwork/authroute/pkg/route"
	"gitlab.com/accumulatenetwork/authroute/pkg/txn"
)

type accounts map[address.Address]*account.Account

func (a accounts) Account(_ context.Context, _ string, addr address.Address) (*account.Account, error) {
	if acct, ok := a[addr]; ok {
		return acct, nil
	}
	return nil, errors.NotFound.WithFormat("account %v not found", addr)
}

type records map[string]*txn.Transaction

func (r records) Transaction(_ context.Context, id string) (*txn.Transaction, error) {
	if t, ok := r[id]; ok {
		return t, nil
	}
	return nil, errors.NotFound.WithFormat("transaction %s not found", id)
}

var (
	alice = address.Address{1}
	bob   = address.Address{2}
	carol = address.Address{3}
	msig  = address.Address{10}

	remark = []byte{0x00, 0x07, 0x04, 0x01}
)

func treasury() *account.Account {
	m := &account.Account{Address: msig, Type: account.TypeMultisig, Threshold: 2, Name: "treasury"}
	for _, a := range []address.Address{alice, bob, carol} {
		m.Members = append(m.Members, &account.Member{Account: &account.Account{Address: a}})
	}
	return m
}

func setup(t *testing.T, recs records) (*Service, *memory.Chain) {
	t.Helper()
	old := slog.Default()
	slog.SetDefault(logging.NewTestLogger(t, "plain", slog.LevelDebug))
	t.Cleanup(func() { slog.SetDefault(old) })

	mc := memory.New(chain.Polkadot())
	opts := Options{
		Network:  mc.Network(),
		Client:   mc,
		Accounts: accounts{msig: treasury()},
	}
	if recs != nil {
		opts.Records = recs
	}
	s, err := New(opts)
	require.NoError(t, err)
	return s, mc
}

func approveAs(signer address.Address, others ...address.Address) route.Route {
	return route.Route{
		&route.Origin{Account: signer},
		&route.MultisigHop{Multisig: msig, Threshold: 2, OtherSignatories: others},
	}
}

func TestNewRequiresNetwork(t *testing.T) {
	_, err := New(Options{})
	require.ErrorIs(t, err, errors.BadRequest)
}

func TestBuildGraphMemoized(t *testing.T) {
	s, _ := setup(t, nil)
	g1 := s.BuildGraph(treasury())
	g2 := s.BuildGraph(treasury())
	require.Same(t, g1, g2)
	require.Len(t, g1.Nodes, 4)

	changed := treasury()
	changed.Threshold = 3
	require.NotSame(t, g1, s.BuildGraph(changed))
}

func TestEnumerateAndCompose(t *testing.T) {
	s, _ := setup(t, nil)
	paths := s.EnumeratePaths(treasury(), nil)
	require.Len(t, paths.Routes, 3)

	env, err := s.Compose(context.Background(), remark, paths.Routes[0], nil)
	require.NoError(t, err)
	require.Equal(t, alice, env.Signer)

	l, err := s.AssessDeposits(context.Background(), env)
	require.NoError(t, err)
	require.Contains(t, l.Reserve, alice)
}

func TestRebuildAndCompose(t *testing.T) {
	hash := call.HashOf(remark)
	tp := call.Timepoint{Height: 100}
	recs := records{
		"tx1": {
			ID:        "tx1",
			Address:   msig,
			Type:      txn.TypeMultisig,
			Status:    txn.StatusPending,
			CallHash:  &hash,
			Timepoint: &tp,
			Children: []*txn.Transaction{
				{Address: bob, Type: txn.TypeDirect, Status: txn.StatusSuccess},
			},
		},
	}
	s, mc := setup(t, recs)
	mc.SetPending(msig, hash, &chain.Pending{When: tp, Depositor: bob, Approvals: []address.Address{bob}})

	// Bob already approved
	_, err := s.RebuildAndCompose(context.Background(), remark, approveAs(bob, alice, carol), "tx1")
	require.ErrorIs(t, err, errors.Conflict)
	require.Equal(t, errors.KindRace, errors.KindOf(err))

	env, err := s.RebuildAndCompose(context.Background(), remark, approveAs(alice, bob, carol), "tx1")
	require.NoError(t, err)
	require.Equal(t, &tp, env.Layers[0].Timepoint)

	// Someone else completed the round
	mc.ClearPending(msig, hash)
	_, err = s.RebuildAndCompose(context.Background(), remark, approveAs(alice, bob, carol), "tx1")
	require.ErrorIs(t, err, errors.Conflict)

	_, err = s.RebuildAndCompose(context.Background(), remark, approveAs(alice, bob, carol), "tx2")
	require.ErrorIs(t, err, errors.NotFound)
}

func TestRebuildWithoutRecord(t *testing.T) {
	s, _ := setup(t, nil)

	env, err := s.RebuildAndCompose(context.Background(), remark, approveAs(carol, alice, bob), "")
	require.NoError(t, err)
	require.True(t, env.Layers[0].FirstApproval)

	_, err = s.RebuildAndCompose(context.Background(), remark, approveAs(carol, alice, bob), "tx1")
	require.ErrorIs(t, err, errors.BadRequest)
}
