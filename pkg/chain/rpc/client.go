// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package rpc implements [chain.Client] over a node's JSON-RPC interface.
package rpc

import (
	"context"
	"encoding/binary"
	"log/slog"
	"math/big"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4/client"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

// Caller makes JSON-RPC calls.
type Caller interface {
	Call(result interface{}, method string, args ...interface{}) error
}

// Client queries a node. Deposit constants come from the network definition.
type Client struct {
	network *chain.Network
	caller  Caller
	closer  func()
}

var _ chain.Client = (*Client)(nil)

// Dial connects to the network's endpoint.
func Dial(network *chain.Network) (*Client, error) {
	if network.Endpoint == "" {
		return nil, errors.BadRequest.WithFormat("%s has no endpoint", network.ID)
	}
	c, err := gsrpc.Connect(network.Endpoint)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("connect to %s: %w", network.Endpoint, err)
	}
	slog.Debug("Connected", "module", "rpc", "network", network.ID, "endpoint", network.Endpoint)
	return &Client{network: network, caller: c, closer: c.Close}, nil
}

// New creates a client that uses the given caller.
func New(network *chain.Network, caller Caller) *Client {
	return &Client{network: network, caller: caller}
}

func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

func (c *Client) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	if err := ctx.Err(); err != nil {
		return errors.UnknownError.Wrap(err)
	}
	mCalls.WithLabelValues(method).Inc()
	err := c.caller.Call(result, method, args...)
	if err != nil {
		mCallErrors.WithLabelValues(method).Inc()
		return errors.UnknownError.WithFormat("%s: %w", method, err)
	}
	return nil
}

// storage returns the raw value at the key, or nil if there is none.
func (c *Client) storage(ctx context.Context, key []byte) ([]byte, error) {
	var res *string
	err := c.call(ctx, &res, "state_getStorage", codec.HexEncodeToString(key))
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	b, err := codec.HexDecodeString(*res)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("decode storage value: %w", err)
	}
	return b, nil
}

func (c *Client) MultisigPending(ctx context.Context, multisig address.Address, hash call.Hash) (*chain.Pending, error) {
	b, err := c.storage(ctx, MultisigsKey(multisig, hash))
	if err != nil || b == nil {
		return nil, err
	}
	return decodeMultisig(b)
}

func (c *Client) ProxyRelationships(ctx context.Context, real address.Address) ([]*chain.ProxyDefinition, error) {
	b, err := c.storage(ctx, ProxiesKey(real))
	if err != nil || b == nil {
		return nil, err
	}
	return decodeProxies(c.network, b)
}

func (c *Client) EstimateWeight(ctx context.Context, data []byte) (call.Weight, error) {
	arg := binary.LittleEndian.AppendUint32(append([]byte{}, data...), uint32(len(data)))

	var res string
	err := c.call(ctx, &res, "state_call", "TransactionPaymentCallApi_query_call_info", codec.HexEncodeToString(arg))
	if err != nil {
		return call.Weight{}, err
	}
	b, err := codec.HexDecodeString(res)
	if err != nil {
		return call.Weight{}, errors.EncodingError.WithFormat("decode call info: %w", err)
	}
	return decodeCallInfo(b)
}

func (c *Client) MultisigDeposit(_ context.Context, threshold uint16) (*big.Int, error) {
	return c.network.Deposits.MultisigDeposit(threshold), nil
}

func (c *Client) ExistentialDeposit(context.Context, address.Address) (*big.Int, error) {
	return c.network.Deposits.ExistentialDeposit(), nil
}

func (c *Client) AnnouncementDeposit(context.Context) (*big.Int, error) {
	return c.network.Deposits.AnnouncementDeposit(), nil
}
