// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package rpc

import (
	"bytes"
	"math/big"
	"slices"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

type reader struct {
	dec *scale.Decoder
	err error
}

func newReader(b []byte) *reader {
	return &reader{dec: scale.NewDecoder(bytes.NewReader(b))}
}

func (r *reader) u8() uint8 {
	var v uint8
	r.decode(&v)
	return v
}

func (r *reader) u32() uint32 {
	var v uint32
	r.decode(&v)
	return v
}

func (r *reader) decode(v interface{}) {
	if r.err == nil {
		r.err = r.dec.Decode(v)
	}
}

// u128 reads a little-endian 128-bit integer.
func (r *reader) u128() *big.Int {
	b := make([]byte, 16)
	if r.err == nil {
		r.err = r.dec.Read(b)
	}
	slices.Reverse(b)
	return new(big.Int).SetBytes(b)
}

func (r *reader) compact() uint64 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.DecodeUintCompact()
	if err != nil {
		r.err = err
		return 0
	}
	if !v.IsUint64() {
		r.err = errors.EncodingError.WithFormat("compact value %v overflows a uint64", v)
		return 0
	}
	return v.Uint64()
}

func (r *reader) account() address.Address {
	var a address.Address
	if r.err == nil {
		r.err = r.dec.Read(a[:])
	}
	return a
}

func (r *reader) accounts() []address.Address {
	n := r.compact()
	var s []address.Address
	for i := uint64(0); i < n && r.err == nil; i++ {
		s = append(s, r.account())
	}
	return s
}

func (r *reader) done(what string) error {
	if r.err != nil {
		return errors.EncodingError.WithFormat("decode %s: %w", what, r.err)
	}
	return nil
}

// decodeMultisig decodes a pallet_multisig::Multisig.
func decodeMultisig(b []byte) (*chain.Pending, error) {
	r := newReader(b)
	p := new(chain.Pending)
	p.When.Height = r.u32()
	p.When.Index = r.u32()
	p.Deposit = r.u128()
	p.Depositor = r.account()
	p.Approvals = r.accounts()
	return p, r.done("multisig")
}

// decodeProxies decodes the (Vec<ProxyDefinition>, Balance) stored for a
// proxied account.
func decodeProxies(n *chain.Network, b []byte) ([]*chain.ProxyDefinition, error) {
	r := newReader(b)
	count := r.compact()
	var defs []*chain.ProxyDefinition
	for i := uint64(0); i < count && r.err == nil; i++ {
		d := new(chain.ProxyDefinition)
		d.Delegate = r.account()
		typ := r.u8()
		d.Delay = r.u32()
		if r.err != nil {
			break
		}

		var err error
		d.ProxyType, err = n.ProxyTypeName(typ)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	_ = r.u128()
	return defs, r.done("proxies")
}

// decodeCallInfo decodes the weight of a RuntimeDispatchInfo.
func decodeCallInfo(b []byte) (call.Weight, error) {
	r := newReader(b)
	var w call.Weight
	w.RefTime = r.compact()
	w.ProofSize = r.compact()
	return w, r.done("call info")
}
