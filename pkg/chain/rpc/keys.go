// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package rpc

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/xxhash"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"golang.org/x/crypto/blake2b"
)

func twox128(s string) []byte {
	return xxhash.New128([]byte(s)).Sum(nil)
}

func twox64Concat(b []byte) []byte {
	return append(xxhash.New64(b).Sum(nil), b...)
}

func blake2128Concat(b []byte) []byte {
	h, _ := blake2b.New(16, nil)
	_, _ = h.Write(b)
	return append(h.Sum(nil), b...)
}

func storageKey(pallet, item string, keys ...[]byte) []byte {
	k := append(twox128(pallet), twox128(item)...)
	for _, b := range keys {
		k = append(k, b...)
	}
	return k
}

// MultisigsKey is the storage key of Multisig.Multisigs(multisig, hash).
func MultisigsKey(multisig address.Address, hash call.Hash) []byte {
	return storageKey("Multisig", "Multisigs", twox64Concat(multisig[:]), blake2128Concat(hash[:]))
}

// ProxiesKey is the storage key of Proxy.Proxies(real).
func ProxiesKey(real address.Address) []byte {
	return storageKey("Proxy", "Proxies", twox64Concat(real[:]))
}
