// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package call encodes the wrapper calls used to dispatch a call through
// multisig and proxy accounts.
package call

import (
	"encoding/hex"
	"fmt"
	"strings"

	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// Hash is the blake2b-256 hash of an encoded call.
type Hash [32]byte

// HashOf hashes an encoded call.
func HashOf(call []byte) Hash {
	return blake2b.Sum256(call)
}

func (h Hash) String() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *Hash) UnmarshalText(b []byte) error {
	v, err := ParseHash(string(b))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// ParseHash parses a hex call hash, with or without the 0x prefix.
func ParseHash(s string) (Hash, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return Hash{}, err
	}
	if len(b) != len(Hash{}) {
		return Hash{}, errors.BadRequest.WithFormat("invalid call hash: want 32 bytes, got %d", len(b))
	}
	return Hash(b), nil
}

// DecodeHex decodes hex-encoded call data, with or without the 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.BadRequest.WithFormat("invalid hex: %w", err)
	}
	return b, nil
}

// Timepoint identifies the extrinsic that opened a multisig approval round.
type Timepoint struct {
	Height uint32 `json:"height"`
	Index  uint32 `json:"index"`
}

func (t Timepoint) String() string { return fmt.Sprintf("%d/%d", t.Height, t.Index) }

// Weight is a dispatch weight.
type Weight struct {
	RefTime   uint64 `json:"refTime"`
	ProofSize uint64 `json:"proofSize"`
}
