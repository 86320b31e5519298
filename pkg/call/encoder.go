// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package call

import (
	"bytes"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"gitlab.com/accumulatenetwork/authroute/internal/util/pool"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

// Index locates a call: the pallet's index in the runtime and the call's
// index in the pallet.
type Index struct {
	Pallet uint8 `json:"pallet"`
	Call   uint8 `json:"call"`
}

// Indices are the call indices of a runtime.
type Indices struct {
	AsMultiThreshold1 Index `json:"asMultiThreshold1"`
	AsMulti           Index `json:"asMulti"`
	Proxy             Index `json:"proxy"`
	Announce          Index `json:"announce"`
	RemoteProxy       Index `json:"remoteProxy"`
}

// Encoder encodes wrapper calls for one runtime.
type Encoder struct {
	Indices Indices

	// ProxyTypes maps proxy type names to their index in the runtime's
	// ProxyType enum.
	ProxyTypes map[string]uint8
}

// AsMultiThreshold1 encodes Multisig.as_multi_threshold_1.
func (e *Encoder) AsMultiThreshold1(others []address.Address, call []byte) ([]byte, error) {
	w := newWriter(e.Indices.AsMultiThreshold1)
	w.accounts(others)
	w.raw(call)
	return w.done()
}

// AsMulti encodes Multisig.as_multi.
func (e *Encoder) AsMulti(threshold uint16, others []address.Address, timepoint *Timepoint, call []byte, maxWeight Weight) ([]byte, error) {
	w := newWriter(e.Indices.AsMulti)
	w.encode(threshold)
	w.accounts(others)
	if timepoint == nil {
		w.byte(0)
	} else {
		w.byte(1)
		w.encode(timepoint.Height)
		w.encode(timepoint.Index)
	}
	w.raw(call)
	w.compact(maxWeight.RefTime)
	w.compact(maxWeight.ProofSize)
	return w.done()
}

// Proxy encodes Proxy.proxy.
func (e *Encoder) Proxy(real address.Address, proxyType string, call []byte) ([]byte, error) {
	return e.proxy(e.Indices.Proxy, real, proxyType, call)
}

// RemoteProxy encodes RemoteProxyRelayChain.remote_proxy_with_registered_proof.
func (e *Encoder) RemoteProxy(real address.Address, proxyType string, call []byte) ([]byte, error) {
	return e.proxy(e.Indices.RemoteProxy, real, proxyType, call)
}

func (e *Encoder) proxy(index Index, real address.Address, proxyType string, call []byte) ([]byte, error) {
	typ, ok := e.ProxyTypes[proxyType]
	if proxyType != "" && !ok {
		return nil, errors.BadRequest.WithFormat("unknown proxy type %q", proxyType)
	}

	w := newWriter(index)
	w.multiAddress(real)
	if proxyType == "" {
		w.byte(0)
	} else {
		w.byte(1)
		w.byte(typ)
	}
	w.raw(call)
	return w.done()
}

// Announce encodes Proxy.announce.
func (e *Encoder) Announce(real address.Address, hash Hash) ([]byte, error) {
	w := newWriter(e.Indices.Announce)
	w.multiAddress(real)
	w.raw(hash[:])
	return w.done()
}

type writer struct {
	buf *bytes.Buffer
	enc *scale.Encoder
	err error
}

var buffers = pool.New((*bytes.Buffer).Reset)

func newWriter(index Index) *writer {
	w := new(writer)
	w.buf = buffers.Get()
	w.enc = scale.NewEncoder(w.buf)
	w.byte(index.Pallet)
	w.byte(index.Call)
	return w
}

func (w *writer) done() ([]byte, error) {
	defer buffers.Put(w.buf)
	if w.err != nil {
		return nil, errors.EncodingError.WithFormat("encode call: %w", w.err)
	}
	return bytes.Clone(w.buf.Bytes()), nil
}

func (w *writer) byte(b byte) {
	if w.err == nil {
		w.err = w.enc.PushByte(b)
	}
}

func (w *writer) raw(b []byte) {
	if w.err == nil {
		w.err = w.enc.Write(b)
	}
}

func (w *writer) encode(v interface{}) {
	if w.err == nil {
		w.err = w.enc.Encode(v)
	}
}

func (w *writer) compact(v uint64) {
	if w.err == nil {
		w.err = w.enc.EncodeUintCompact(*new(big.Int).SetUint64(v))
	}
}

func (w *writer) accounts(addrs []address.Address) {
	w.compact(uint64(len(addrs)))
	for _, a := range addrs {
		w.raw(a[:])
	}
}

// multiAddress encodes MultiAddress::Id.
func (w *writer) multiAddress(a address.Address) {
	w.byte(0)
	w.raw(a[:])
}
