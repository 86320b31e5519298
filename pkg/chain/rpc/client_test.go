// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package rpc

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

type fakeNode struct {
	storage  map[string]string
	callInfo string
	methods  []string
}

func (f *fakeNode) Call(result interface{}, method string, args ...interface{}) error {
	f.methods = append(f.methods, method)
	switch method {
	case "state_getStorage":
		v, ok := f.storage[args[0].(string)]
		if ok {
			*result.(**string) = &v
		}
		return nil
	case "state_call":
		*result.(*string) = f.callInfo
		return nil
	}
	return fmt.Errorf("unknown method %s", method)
}

func join(parts ...[]byte) []byte { return bytes.Join(parts, nil) }

func TestStorageKeys(t *testing.T) {
	// twox128("System") is a well-known prefix
	require.Equal(t, "26aa394eea5630e07c48ae0c9558cef7", hex.EncodeToString(twox128("System")))

	a := address.Address{1}
	key := ProxiesKey(a)
	require.Len(t, key, 16+16+8+32)
	require.Equal(t, a[:], key[len(key)-32:])

	key = MultisigsKey(a, call.Hash{2})
	require.Len(t, key, 16+16+8+32+16+32)
}

func TestMultisigPending(t *testing.T) {
	msig, bob := address.Address{10}, address.Address{2}
	hash := call.HashOf([]byte{1})

	value := join(
		[]byte{100, 0, 0, 0, 1, 0, 0, 0},
		[]byte{5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		bob[:],
		[]byte{0x04}, bob[:],
	)
	node := &fakeNode{storage: map[string]string{
		codec.HexEncodeToString(MultisigsKey(msig, hash)): codec.HexEncodeToString(value),
	}}
	c := New(chain.Polkadot(), node)

	p, err := c.MultisigPending(context.Background(), msig, hash)
	require.NoError(t, err)
	require.Equal(t, call.Timepoint{Height: 100, Index: 1}, p.When)
	require.Equal(t, "5", p.Deposit.String())
	require.Equal(t, bob, p.Depositor)
	require.Equal(t, []address.Address{bob}, p.Approvals)

	p, err = c.MultisigPending(context.Background(), msig, call.HashOf([]byte{2}))
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestProxyRelationships(t *testing.T) {
	real, alice, bob := address.Address{30}, address.Address{1}, address.Address{2}
	value := join(
		[]byte{0x08},
		alice[:], []byte{0}, []byte{0, 0, 0, 0},
		bob[:], []byte{3}, []byte{10, 0, 0, 0},
		make([]byte, 16),
	)
	node := &fakeNode{storage: map[string]string{
		codec.HexEncodeToString(ProxiesKey(real)): codec.HexEncodeToString(value),
	}}
	c := New(chain.Polkadot(), node)

	defs, err := c.ProxyRelationships(context.Background(), real)
	require.NoError(t, err)
	require.Equal(t, []*chain.ProxyDefinition{
		{Delegate: alice, ProxyType: "Any"},
		{Delegate: bob, ProxyType: "Staking", Delay: 10},
	}, defs)

	defs, err = c.ProxyRelationships(context.Background(), alice)
	require.NoError(t, err)
	require.Empty(t, defs)

	// Unknown proxy type
	value[1+32] = 4
	node.storage[codec.HexEncodeToString(ProxiesKey(real))] = codec.HexEncodeToString(value)
	_, err = c.ProxyRelationships(context.Background(), real)
	require.ErrorIs(t, err, errors.EncodingError)
}

func TestEstimateWeight(t *testing.T) {
	// Weight{ref_time: 1000, proof_size: 64}, class, partial fee
	info := join([]byte{0xa1, 0x0f, 0x01, 0x01}, []byte{0}, make([]byte, 16))
	node := &fakeNode{callInfo: codec.HexEncodeToString(info)}
	c := New(chain.Polkadot(), node)

	w, err := c.EstimateWeight(context.Background(), []byte{0, 7, 4, 1})
	require.NoError(t, err)
	require.Equal(t, call.Weight{RefTime: 1000, ProofSize: 64}, w)
	require.Equal(t, []string{"state_call"}, node.methods)
}

func TestCanceledContext(t *testing.T) {
	node := new(fakeNode)
	c := New(chain.Polkadot(), node)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.ProxyRelationships(ctx, address.Address{1})
	require.Error(t, err)
	require.Empty(t, node.methods)
}

func TestDeposits(t *testing.T) {
	c := New(chain.Polkadot(), new(fakeNode))
	d, err := c.MultisigDeposit(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, "2015200000", d.String())

	d, err = c.AnnouncementDeposit(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2007400000", d.String())
}
