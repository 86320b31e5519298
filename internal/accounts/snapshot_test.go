// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package accounts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/authroute/pkg/account"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

const snapshotYAML = `
accounts:
  - address: "0x0a00000000000000000000000000000000000000000000000000000000000000"
    type: multisig
    name: treasury
    threshold: 2
    members:
      - "0x0100000000000000000000000000000000000000000000000000000000000000"
      - "0x0200000000000000000000000000000000000000000000000000000000000000"
  - address: "0x1e00000000000000000000000000000000000000000000000000000000000000"
    type: pure
    delegates:
      - address: "0x0a00000000000000000000000000000000000000000000000000000000000000"
        proxy-type: Any
        delay: 10
    proposers:
      - "0x0300000000000000000000000000000000000000000000000000000000000000"
`

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "accounts.yaml")
	require.NoError(t, os.WriteFile(file, []byte(snapshotYAML), 0600))

	s, err := Load(file)
	require.NoError(t, err)

	pure, err := s.Account(context.Background(), "polkadot", address.Address{30})
	require.NoError(t, err)
	require.Equal(t, account.TypePure, pure.Type)
	require.NoError(t, pure.Validate(8))
	require.Len(t, pure.Delegatees, 1)
	require.Len(t, pure.Proposers, 1)

	d := pure.Delegatees[0]
	require.Equal(t, "Any", d.ProxyType)
	require.Equal(t, uint32(10), d.Delay)
	require.Equal(t, "treasury", d.Delegate.Name)
	require.Equal(t, uint16(2), d.Delegate.Threshold)
	require.Equal(t, []address.Address{{1}, {2}}, account.MemberAddresses(d.Delegate))

	_, err = s.Account(context.Background(), "polkadot", address.Address{99})
	require.ErrorIs(t, err, errors.NotFound)
}

func TestCycle(t *testing.T) {
	a, b := address.Address{1}, address.Address{2}
	s, err := New(
		&Entry{Address: a, Delegates: []*DelegateEntry{{Address: b, ProxyType: "Any"}}},
		&Entry{Address: b, Delegates: []*DelegateEntry{{Address: a, ProxyType: "Any"}}},
	)
	require.NoError(t, err)

	acct, err := s.Account(context.Background(), "", a)
	require.NoError(t, err)
	require.Same(t, acct, acct.Delegatees[0].Delegate.Delegatees[0].Delegate)
}

func TestDuplicate(t *testing.T) {
	_, err := New(&Entry{Address: address.Address{1}}, &Entry{Address: address.Address{1}})
	require.ErrorIs(t, err, errors.BadRequest)
}

func TestInvalidEntry(t *testing.T) {
	a, b := address.Address{1}, address.Address{2}
	cases := map[string]*Entry{
		"HighThreshold": {Address: a, Type: account.TypeMultisig, Threshold: 2, Members: []address.Address{b}},
		"NoMembers":     {Address: a, Type: account.TypeMultisig, Threshold: 1},
		"PlainMembers":  {Address: a, Members: []address.Address{b}},
		"NoProxyType":   {Address: a, Delegates: []*DelegateEntry{{Address: b}}},
	}
	for name, e := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(e)
			require.ErrorIs(t, err, errors.BadRequest)
		})
	}
}
